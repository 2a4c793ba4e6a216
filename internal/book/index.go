package book

import (
	"github.com/LuisNY/BookAnalyzer/internal/common"
)

// OrderRef locates an order: which side's book it rests in and at which
// price level. Side and price are immutable for an order's lifetime.
type OrderRef struct {
	Side  common.Side
	Price float64
}

// OrderIndex maps live order ids to their book location, so a reduce
// does not have to re-specify side or price. An id is present here
// exactly while it has resting quantity in one of the books.
type OrderIndex struct {
	refs map[string]OrderRef
}

func NewOrderIndex() *OrderIndex {
	return &OrderIndex{
		refs: make(map[string]OrderRef),
	}
}

// Record remembers where id rests. First occurrence wins; a duplicate
// add for a live id leaves the existing entry untouched.
func (ix *OrderIndex) Record(id string, side common.Side, price float64) {
	if _, ok := ix.refs[id]; ok {
		return
	}
	ix.refs[id] = OrderRef{Side: side, Price: price}
}

func (ix *OrderIndex) Lookup(id string) (OrderRef, bool) {
	ref, ok := ix.refs[id]
	return ref, ok
}

// Erase forgets id. Called once the order's resting quantity hit zero.
func (ix *OrderIndex) Erase(id string) {
	delete(ix.refs, id)
}

func (ix *OrderIndex) Len() int {
	return len(ix.refs)
}
