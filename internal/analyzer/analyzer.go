package analyzer

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/LuisNY/BookAnalyzer/internal/book"
	"github.com/LuisNY/BookAnalyzer/internal/common"
)

var ErrInvalidTarget = errors.New("target quantity must be positive")

// Sink receives the analyzer's output decisions. The buy side's
// valuation is the income of selling the target into the book's bids;
// the sell side's is the expense of buying it from the asks. The sink
// owns the line format, including the side-to-label mapping.
type Sink interface {
	Valuation(timestamp int64, side common.Side, amount float64)
	NoLiquidity(timestamp int64, side common.Side)
}

// sideState bundles one side's book with its output suppression state.
// Before any event the side is in the no-liquidity state.
type sideState struct {
	book *book.PriceLevelBook

	// Last amount handed to the suppression check, updated on every
	// valuation whether or not a line was emitted.
	prev float64
	na   bool
}

// BookAnalyzer applies the event stream to the two books and emits a
// valuation line whenever a side's answer for the target quantity
// changes, or crosses into or out of the no-liquidity state.
//
// Processing is strictly sequential: one event is fully applied,
// valued and emitted before the next is read. Not safe for concurrent
// use.
type BookAnalyzer struct {
	valuator book.DepthValuator
	index    *book.OrderIndex
	sides    [common.NumSides]sideState
	sink     Sink
}

func New(target int64, sink Sink) (*BookAnalyzer, error) {
	if target <= 0 {
		return nil, ErrInvalidTarget
	}
	a := &BookAnalyzer{
		valuator: book.DepthValuator{Target: target},
		index:    book.NewOrderIndex(),
		sink:     sink,
	}
	for side := range a.sides {
		a.sides[side] = sideState{
			book: book.NewPriceLevelBook(common.Side(side)),
			na:   true,
		}
	}
	return a, nil
}

// Apply dispatches one feed event.
func (a *BookAnalyzer) Apply(ev common.Event) {
	switch ev := ev.(type) {
	case common.AddOrder:
		a.HandleAdd(ev)
	case common.ReduceOrder:
		a.HandleReduce(ev)
	default:
		log.Debug().Type("event", ev).Msg("ignoring unknown event kind")
	}
}

// HandleAdd rests a new order and revalues its side once the side's
// aggregate quantity covers the target. The index entry is recorded
// after the book mutation; a duplicate id keeps its first entry.
func (a *BookAnalyzer) HandleAdd(ev common.AddOrder) {
	st := &a.sides[ev.Side]
	st.book.Add(ev.Price, ev.ID, ev.Quantity)

	if st.book.TotalQuantity() >= a.valuator.Target {
		a.revalue(ev.Timestamp, ev.Side)
	}

	a.index.Record(ev.ID, ev.Side, ev.Price)
}

// HandleReduce shrinks a resting order. An id the index does not know
// is a stale or foreign reduce and is ignored without touching any
// state. Dropping the side's aggregate below the target emits the
// no-liquidity transition exactly once.
func (a *BookAnalyzer) HandleReduce(ev common.ReduceOrder) {
	ref, ok := a.index.Lookup(ev.ID)
	if !ok {
		log.Debug().Str("id", ev.ID).Msg("reduce for unknown order id")
		return
	}

	st := &a.sides[ref.Side]
	switch st.book.Reduce(ref.Price, ev.ID, ev.Quantity) {
	case book.ReduceNotFound:
		return
	case book.ReducedAndEmptied:
		a.index.Erase(ev.ID)
	}

	if st.book.TotalQuantity() >= a.valuator.Target {
		a.revalue(ev.Timestamp, ref.Side)
	} else if !st.na {
		st.na = true
		a.sink.NoLiquidity(ev.Timestamp, ref.Side)
	}
}

// revalue recomputes one side's depth valuation and applies the
// suppression rule: emit only when the amount changed or the side was
// previously in the no-liquidity state. The dedup state is refreshed
// even when the line is suppressed.
func (a *BookAnalyzer) revalue(timestamp int64, side common.Side) {
	st := &a.sides[side]
	amount, ok := a.valuator.Valuate(st.book)
	if !ok {
		// The aggregate never overcounts the book, so a threshold pass
		// normally guarantees depth; still treated as a transition.
		if !st.na {
			st.na = true
			a.sink.NoLiquidity(timestamp, side)
		}
		return
	}

	if amount != st.prev || st.na {
		a.sink.Valuation(timestamp, side, amount)
	}
	st.prev = amount
	st.na = false
}
