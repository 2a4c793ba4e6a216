package book

import (
	"github.com/tidwall/btree"

	"github.com/LuisNY/BookAnalyzer/internal/common"
)

// PriceLevel holds every resting order sharing one price on one side,
// keyed by order id.
type PriceLevel struct {
	price  float64
	orders map[string]int64
}

func (lvl *PriceLevel) Price() float64 {
	return lvl.price
}

// Quantity sums the resting quantity across all orders on the level.
func (lvl *PriceLevel) Quantity() int64 {
	var total int64
	for _, qty := range lvl.orders {
		total += qty
	}
	return total
}

type PriceLevels = btree.BTreeG[*PriceLevel]

// ReduceOutcome reports what a Reduce did to the targeted order.
type ReduceOutcome int

const (
	// ReduceNotFound means no order with that id rests at the given price.
	ReduceNotFound ReduceOutcome = iota
	// Reduced means the order shrank but still has resting quantity.
	Reduced
	// ReducedAndEmptied means the order was drained and removed; the
	// caller must drop the id from the order index.
	ReducedAndEmptied
)

// PriceLevelBook stores the resting liquidity of one side, price levels
// ordered best price first: highest first for Buy, lowest first for Sell.
type PriceLevelBook struct {
	side   common.Side
	levels *PriceLevels

	// Running aggregate of the side's resting quantity, updated on
	// Add/Reduce deltas rather than recomputed by scanning. Reduces
	// subtract the full requested quantity even when the order held
	// less, so the aggregate never overcounts the book.
	total int64
}

func NewPriceLevelBook(side common.Side) *PriceLevelBook {
	var less func(a, b *PriceLevel) bool
	if side == common.Buy {
		// Sorted greatest first.
		less = func(a, b *PriceLevel) bool {
			return a.price > b.price
		}
	} else {
		// Sorted least first.
		less = func(a, b *PriceLevel) bool {
			return a.price < b.price
		}
	}
	return &PriceLevelBook{
		side:   side,
		levels: btree.NewBTreeG(less),
	}
}

func (book *PriceLevelBook) Side() common.Side {
	return book.side
}

// TotalQuantity is the side's running resting-quantity aggregate, used
// as a cheap threshold check before a full depth valuation.
func (book *PriceLevelBook) TotalQuantity() int64 {
	return book.total
}

// Add rests qty under id at the level for price, creating the level if
// needed. An id already present at that level is kept as-is; an id has
// exactly one price for its lifetime, so re-adds are not merged.
func (book *PriceLevelBook) Add(price float64, id string, qty int64) {
	book.total += qty

	// Levels comparator only accounts for price, so a probe level is
	// enough for the search.
	level, ok := book.levels.GetMut(&PriceLevel{price: price})
	if !ok {
		book.levels.Set(&PriceLevel{
			price:  price,
			orders: map[string]int64{id: qty},
		})
		return
	}
	if _, exists := level.orders[id]; !exists {
		level.orders[id] = qty
	}
}

// Reduce shrinks the order id at price by qty. A result going to zero or
// below removes the order from the level; a level left empty is removed
// from the book. Over-reduction is accepted as a full removal.
func (book *PriceLevelBook) Reduce(price float64, id string, qty int64) ReduceOutcome {
	level, ok := book.levels.GetMut(&PriceLevel{price: price})
	if !ok {
		return ReduceNotFound
	}
	resting, ok := level.orders[id]
	if !ok {
		return ReduceNotFound
	}

	book.total -= qty

	resting -= qty
	if resting > 0 {
		level.orders[id] = resting
		return Reduced
	}

	delete(level.orders, id)
	if len(level.orders) == 0 {
		book.levels.Delete(level)
	}
	return ReducedAndEmptied
}

// Scan walks the levels best price first, stopping when fn returns false.
func (book *PriceLevelBook) Scan(fn func(level *PriceLevel) bool) {
	book.levels.Scan(fn)
}

// Levels returns the book's levels best price first. Test helper.
func (book *PriceLevelBook) Levels() []*PriceLevel {
	return book.levels.Items()
}
