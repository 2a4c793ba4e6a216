package book

// DepthValuator prices a fixed target quantity against one side's
// resting liquidity by sweeping price levels best first.
type DepthValuator struct {
	Target int64
}

// Valuate consumes min(levelQuantity, remaining) at each level and
// accumulates quantity*price into the running amount. The sweep stops
// once the target is filled; if the levels exhaust first there is not
// enough liquidity and no amount is meaningful.
//
// Accumulation is plain float64 in the book's deterministic best-first
// order, so equal books always produce bit-equal amounts. The output
// suppression relies on that.
func (v DepthValuator) Valuate(book *PriceLevelBook) (float64, bool) {
	var (
		filled int64
		amount float64
	)
	book.Scan(func(level *PriceLevel) bool {
		take := level.Quantity()
		if remaining := v.Target - filled; take > remaining {
			take = remaining
		}
		amount += float64(take) * level.Price()
		filled += take
		return filled < v.Target
	})
	return amount, filled >= v.Target
}
