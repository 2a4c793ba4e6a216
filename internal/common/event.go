package common

// Event is a single entry of the book feed. Timestamps are opaque
// pass-through values, only used for output; the feed is assumed to
// already be ordered by them.
type Event interface {
	EventTimestamp() int64
}

// AddOrder places a fresh order with an id not currently resting.
type AddOrder struct {
	Timestamp int64
	ID        string
	Side      Side
	Price     float64
	Quantity  int64
}

func (e AddOrder) EventTimestamp() int64 {
	return e.Timestamp
}

// ReduceOrder shrinks the resting quantity of a previously added order.
// The side and price are resolved through the order index, not carried
// on the event.
type ReduceOrder struct {
	Timestamp int64
	ID        string
	Quantity  int64
}

func (e ReduceOrder) EventTimestamp() int64 {
	return e.Timestamp
}
