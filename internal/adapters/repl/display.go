package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/house-holder/shopkeeper/internal/core"
)

// PrintInventory renders the inventory table once. Used by the one-shot
// stock command; the interactive loop calls it between selections.
func PrintInventory(w io.Writer, store *core.Store) {
	printInventory(w, store)
}

func printInventory(w io.Writer, store *core.Store) {
	border := strings.Repeat("-", 72)
	fmt.Fprintf(w, "%s\n %-6s | %-40s |  %-9s | %-5s\n%s\n",
		border, "ID#", "Description", "Unit Cost", "Avail", border)

	for _, id := range store.InventoryIDs() {
		item, qty, ok := store.InventoryGet(id)
		if !ok {
			continue
		}
		fmt.Fprintf(w, " %06d | %-40s | $%9s | %5d\n", id, item.Name, item.Cost, qty)
	}
}

func printReceipt(w io.Writer, store *core.Store, order *core.Order) {
	for _, l := range order.Lines {
		item, _, ok := store.InventoryGet(l.ItemID)
		if !ok {
			// Commit already validated every line.
			continue
		}
		lineTotal := item.Cost * core.Cents(l.Qty)
		fmt.Fprintf(w, "  x%d  %s  $%s\n", l.Qty, item.Name, lineTotal)
	}
	fmt.Fprintf(w, "total=$%s ship=%s\n", order.Cost, order.ShipWeight)
}

func printOrders(w io.Writer, store *core.Store) {
	orders := store.Orders()
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 48))
	fmt.Fprintf(w, "  ORDER HISTORY\n")
	fmt.Fprintln(w, strings.Repeat("=", 48))
	if len(orders) == 0 {
		fmt.Fprintln(w, "  No orders committed.")
		fmt.Fprintln(w, strings.Repeat("=", 48))
		return
	}
	fmt.Fprintf(w, "  %-6s %12s %10s %6s\n", "ID", "TOTAL", "SHIP", "LINES")
	fmt.Fprintln(w, strings.Repeat("-", 48))
	for _, o := range orders {
		fmt.Fprintf(w, "  %-6d %12s %10s %6d\n", o.ID, "$"+o.Cost.String(), o.ShipWeight, len(o.Lines))
	}
	fmt.Fprintln(w, strings.Repeat("=", 48))
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "SHOPKEEPER — COMMANDS")
	fmt.Fprintln(w, strings.Repeat("=", 48))
	fmt.Fprintln(w, "  order   (o)   Build an order interactively")
	fmt.Fprintln(w, "  stock   (s)   Show stocked inventory")
	fmt.Fprintln(w, "  add     (a)   Stock a new item")
	fmt.Fprintln(w, "  orders        List committed orders")
	fmt.Fprintln(w, "  help    (h)   Show this help")
	fmt.Fprintln(w, "  exit    (q)   Exit")
	fmt.Fprintln(w, strings.Repeat("=", 48))
}
