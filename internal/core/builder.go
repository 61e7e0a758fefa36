package core

import (
	"cmp"
	"slices"
	"strconv"
)

// Prompt supplies operator input to an order-building session, one line at
// a time. Implementations retry internally on unparsable numeric input for
// Quantity; any returned error is an I/O failure and ends the session.
type Prompt interface {
	Line(label string) (string, error)
	Quantity(label string) (uint32, error)
}

// View renders session feedback: the current inventory between selections
// and one-line diagnostics for recoverable errors.
type View interface {
	ShowInventory(s *Store)
	Noticef(format string, args ...any)
}

// OrderBuilder runs the interactive reservation protocol against a Store.
// Each selection is applied to shared inventory immediately, so the
// availability shown to the operator is always post-reservation; quitting
// therefore restores every reservation made in the session.
type OrderBuilder struct {
	store    *Store
	prompt   Prompt
	view     View
	reserved map[uint32]uint32 // item id → qty reserved this session
}

func NewOrderBuilder(store *Store, prompt Prompt, view View) *OrderBuilder {
	return &OrderBuilder{
		store:    store,
		prompt:   prompt,
		view:     view,
		reserved: make(map[uint32]uint32),
	}
}

// Run drives the selection loop until the operator finishes or quits.
// It returns the finalized lines, sorted by item id, or nil lines when the
// order was cancelled. Recoverable input and stock errors are reported via
// the View and never end the session; only prompt I/O errors do.
func (b *OrderBuilder) Run() ([]OrderLine, error) {
	for {
		b.view.ShowInventory(b.store)
		ids := b.store.InventoryIDs()

		cmd, err := b.prompt.Line("  > Select row # ('finish' to complete, 'quit' to cancel): ")
		if err != nil {
			return nil, err
		}

		switch cmd {
		case "finish", "f":
			if len(b.reserved) == 0 {
				b.view.Noticef("Unable to complete order, no items have been added.")
				continue
			}
			return b.lines(), nil
		case "quit", "q":
			b.rollback()
			return nil, nil
		}

		row, err := strconv.Atoi(cmd)
		if err != nil {
			b.view.Noticef("Enter a row number, 'finish', or 'quit'.")
			continue
		}
		if row < 0 || row >= len(ids) {
			b.view.Noticef("Row out of range.")
			continue
		}
		itemID := ids[row]

		qty, err := b.prompt.Quantity("  > Qty: ")
		if err != nil {
			return nil, err
		}
		if qty == 0 {
			b.view.Noticef("Quantity must be positive.")
			continue
		}

		if _, err := b.store.AdjustStock(itemID, -int64(qty)); err != nil {
			b.view.Noticef("%v", err)
			continue
		}
		b.reserved[itemID] += qty
	}
}

// lines converts the reservation map into the finalized line set.
func (b *OrderBuilder) lines() []OrderLine {
	lines := make([]OrderLine, 0, len(b.reserved))
	for itemID, qty := range b.reserved {
		lines = append(lines, OrderLine{ItemID: itemID, Qty: qty})
	}
	slices.SortFunc(lines, func(x, y OrderLine) int {
		return cmp.Compare(x.ItemID, y.ItemID)
	})
	return lines
}

// rollback restores every reservation made this session. Best-effort: a
// restore failure does not stop cancellation of the remaining lines.
func (b *OrderBuilder) rollback() {
	for itemID, qty := range b.reserved {
		if _, err := b.store.AdjustStock(itemID, int64(qty)); err != nil {
			b.view.Noticef("restore %d x item %d: %v", qty, itemID, err)
		}
	}
}
