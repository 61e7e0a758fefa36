package core

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var (
	// ErrUnknownItem reports an item id with no inventory entry.
	ErrUnknownItem = errors.New("unknown item")
	// ErrInsufficientStock reports an adjustment that would drive the
	// on-hand quantity negative. The quantity is left unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrOrderTooLarge reports an order whose aggregate cost or weight
	// exceeds the representable range. Not operator-recoverable.
	ErrOrderTooLarge = errors.New("order total exceeds representable range")
)

type inventoryEntry struct {
	item Item
	qty  uint32
}

// Store owns the inventory, the order history and both id counters for the
// lifetime of the process. All mutation goes through its methods; it is
// built for exactly one operator session at a time.
type Store struct {
	inventory   map[uint32]*inventoryEntry
	orders      []Order
	nextItemID  uint32
	nextOrderID uint32
}

func NewStore() *Store {
	return &Store{
		inventory:   make(map[uint32]*inventoryEntry),
		nextItemID:  1,
		nextOrderID: 1,
	}
}

// Stock inserts or replaces the inventory entry for item.ID. The caller owns
// id uniqueness; StockNew is the safe path for operator-created items.
func (s *Store) Stock(item Item, quantity uint32) {
	s.inventory[item.ID] = &inventoryEntry{item: item, qty: quantity}
}

// StockNew allocates the next sequential item id, stores the item with the
// given quantity and returns the new id.
func (s *Store) StockNew(name string, cost Cents, weight Grams, quantity uint32) uint32 {
	id := s.nextItemID
	s.Stock(Item{ID: id, Name: name, Cost: cost, Weight: weight}, quantity)
	s.nextItemID++
	return id
}

// InventoryLen returns the number of distinct stocked items.
func (s *Store) InventoryLen() int {
	return len(s.inventory)
}

// InventoryIDs returns all item ids in ascending order, so presentation
// order is deterministic regardless of map iteration order.
func (s *Store) InventoryIDs() []uint32 {
	ids := make([]uint32, 0, len(s.inventory))
	for id := range s.inventory {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// InventoryGet returns the item and on-hand quantity for id.
func (s *Store) InventoryGet(id uint32) (Item, uint32, bool) {
	e, ok := s.inventory[id]
	if !ok {
		return Item{}, 0, false
	}
	return e.item, e.qty, true
}

// AdjustStock applies a signed quantity change: positive to restock,
// negative to reserve or consume. It is the only mutating primitive for
// quantities, so the never-negative invariant holds after every call.
// On failure the quantity is unchanged.
func (s *Store) AdjustStock(id uint32, delta int64) (uint32, error) {
	e, ok := s.inventory[id]
	if !ok {
		return 0, fmt.Errorf("adjust stock: id %d: %w", id, ErrUnknownItem)
	}

	newQty := int64(e.qty) + delta
	if newQty < 0 {
		return 0, fmt.Errorf("adjust stock: id %d: %w", id, ErrInsufficientStock)
	}

	e.qty = uint32(newQty)
	return e.qty, nil
}

// CommitOrder converts a finalized, already-reserved line set into an
// immutable Order with aggregated cost and shipping weight, allocating the
// next order id. Stock is not re-adjusted here — reservation happened during
// order building. The order is returned unrecorded; call PushOrder to append
// it to the history.
//
// A line referencing a missing item is a programmer error (the builder only
// produces live lines); both that and aggregate overflow come back as errors
// the caller must treat as fatal.
func (s *Store) CommitOrder(lines []OrderLine) (*Order, error) {
	var costTotal, gramsTotal uint64
	for _, l := range lines {
		e, ok := s.inventory[l.ItemID]
		if !ok {
			return nil, fmt.Errorf("commit order: line item %d: %w", l.ItemID, ErrUnknownItem)
		}
		qty := uint64(l.Qty)
		costTotal += uint64(e.item.Cost) * qty
		gramsTotal += uint64(e.item.Weight) * qty
		if costTotal > math.MaxUint32 || gramsTotal > math.MaxUint32 {
			return nil, fmt.Errorf("commit order: %w", ErrOrderTooLarge)
		}
	}

	order := &Order{
		ID:         s.nextOrderID,
		Cost:       Cents(costTotal),
		ShipWeight: Grams(gramsTotal),
		Lines:      lines,
	}
	s.nextOrderID++
	return order, nil
}

// PushOrder appends a committed order to the history. Orders are never
// removed.
func (s *Store) PushOrder(order Order) {
	s.orders = append(s.orders, order)
}

// Orders returns the order history in commit order.
func (s *Store) Orders() []Order {
	return s.orders
}
