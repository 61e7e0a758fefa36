package core

// Item is a stocked product. Immutable once created; ids are unique within
// a Store and assigned by it (StockNew) unless seeded explicitly.
type Item struct {
	ID     uint32
	Name   string
	Cost   Cents // unit cost
	Weight Grams // unit shipping weight
}

// OrderLine is one distinct item's total quantity within an order.
// Qty is always positive; repeated selections of the same item collapse
// into a single line.
type OrderLine struct {
	ItemID uint32
	Qty    uint32
}

// Order is a committed order with aggregated totals. Immutable; created only
// by Store.CommitOrder.
type Order struct {
	ID         uint32
	Cost       Cents
	ShipWeight Grams
	Lines      []OrderLine // sorted by item id
}
