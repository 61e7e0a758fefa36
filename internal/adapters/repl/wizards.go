package repl

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/house-holder/shopkeeper/internal/core"
)

// handleCreateStock runs the interactive stocking wizard and returns the
// new item's id.
func (r *REPL) handleCreateStock() (uint32, error) {
	fmt.Fprintln(r.out, "Creating new stock item...")
	name, err := r.prompt.Line("  Item name: ")
	if err != nil {
		return 0, err
	}
	cents, err := r.prompt.Quantity("  Item price (cents): ")
	if err != nil {
		return 0, err
	}
	grams, err := r.prompt.Quantity("  Item weight (g): ")
	if err != nil {
		return 0, err
	}
	qty, err := r.prompt.Quantity("  Quantity: ")
	if err != nil {
		return 0, err
	}

	id := r.store.StockNew(name, core.Cents(cents), core.Grams(grams), qty)
	fmt.Fprintf(r.out, "Stocked item %06d: %s\n", id, name)
	r.log.WithFields(logrus.Fields{
		"item_id":  id,
		"quantity": qty,
	}).Info("item stocked")
	return id, nil
}

// handleNewOrder runs an order-building session and, when the operator
// finishes, commits the order, prints the receipt and records it.
func (r *REPL) handleNewOrder() error {
	builder := core.NewOrderBuilder(r.store, r.prompt, r)
	lines, err := builder.Run()
	if err != nil {
		return err
	}
	if lines == nil {
		fmt.Fprintln(r.out, "Order cancelled, stock restored.")
		r.log.Info("order cancelled")
		return nil
	}

	order, err := r.store.CommitOrder(lines)
	if err != nil {
		// Stale lines or aggregate overflow: a bug or store
		// misconfiguration, not an operator mistake.
		r.log.WithError(err).Fatal("commit order")
	}

	printReceipt(r.out, r.store, order)
	r.store.PushOrder(*order)
	r.log.WithFields(logrus.Fields{
		"order_id":    order.ID,
		"total_cents": uint32(order.Cost),
		"ship_grams":  uint32(order.ShipWeight),
		"lines":       len(order.Lines),
	}).Info("order committed")
	return nil
}
