package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuisNY/BookAnalyzer/internal/common"
)

func levelQuantities(book *PriceLevelBook) map[float64]int64 {
	out := make(map[float64]int64)
	for _, level := range book.Levels() {
		out[level.Price()] = level.Quantity()
	}
	return out
}

func levelPrices(book *PriceLevelBook) []float64 {
	var out []float64
	for _, level := range book.Levels() {
		out = append(out, level.Price())
	}
	return out
}

func TestAdd_AggregatesAtSamePrice(t *testing.T) {
	book := NewPriceLevelBook(common.Buy)

	book.Add(10.00, "a", 100)
	book.Add(10.00, "b", 90)
	book.Add(10.00, "c", 80)

	assert.Equal(t, map[float64]int64{10.00: 270}, levelQuantities(book))
	assert.Equal(t, int64(270), book.TotalQuantity())
}

func TestAdd_DuplicateIDKeepsFirstQuantity(t *testing.T) {
	book := NewPriceLevelBook(common.Sell)

	book.Add(10.00, "a", 100)
	book.Add(10.00, "a", 50)

	// First occurrence wins on the level; the aggregate tracks what the
	// feed claimed was added.
	assert.Equal(t, map[float64]int64{10.00: 100}, levelQuantities(book))
	assert.Equal(t, int64(150), book.TotalQuantity())
}

func TestScan_BuyLevelsDescendSellLevelsAscend(t *testing.T) {
	bids := NewPriceLevelBook(common.Buy)
	bids.Add(9.00, "a", 10)
	bids.Add(11.00, "b", 10)
	bids.Add(10.00, "c", 10)

	asks := NewPriceLevelBook(common.Sell)
	asks.Add(9.00, "d", 10)
	asks.Add(11.00, "e", 10)
	asks.Add(10.00, "f", 10)

	assert.Equal(t, []float64{11.00, 10.00, 9.00}, levelPrices(bids), "bids should be sorted High -> Low")
	assert.Equal(t, []float64{9.00, 10.00, 11.00}, levelPrices(asks), "asks should be sorted Low -> High")
}

func TestReduce_Partial(t *testing.T) {
	book := NewPriceLevelBook(common.Buy)
	book.Add(10.00, "a", 100)

	outcome := book.Reduce(10.00, "a", 40)

	assert.Equal(t, Reduced, outcome)
	assert.Equal(t, map[float64]int64{10.00: 60}, levelQuantities(book))
	assert.Equal(t, int64(60), book.TotalQuantity())
}

func TestReduce_ToZeroRemovesOrderAndLevel(t *testing.T) {
	book := NewPriceLevelBook(common.Buy)
	book.Add(10.00, "a", 100)

	outcome := book.Reduce(10.00, "a", 100)

	assert.Equal(t, ReducedAndEmptied, outcome)
	assert.Empty(t, book.Levels())
	assert.Equal(t, int64(0), book.TotalQuantity())
}

func TestReduce_ToZeroKeepsLevelWithOtherOrders(t *testing.T) {
	book := NewPriceLevelBook(common.Sell)
	book.Add(10.00, "a", 100)
	book.Add(10.00, "b", 50)

	outcome := book.Reduce(10.00, "a", 100)

	assert.Equal(t, ReducedAndEmptied, outcome)
	assert.Equal(t, map[float64]int64{10.00: 50}, levelQuantities(book))
}

func TestReduce_OverReduceClampsToRemoval(t *testing.T) {
	book := NewPriceLevelBook(common.Buy)
	book.Add(10.00, "a", 100)

	outcome := book.Reduce(10.00, "a", 150)

	assert.Equal(t, ReducedAndEmptied, outcome)
	assert.Empty(t, book.Levels())
	// The aggregate drops by the full requested quantity, so it can
	// only ever undercount the book.
	assert.Equal(t, int64(-50), book.TotalQuantity())
}

func TestReduce_UnknownPriceOrID(t *testing.T) {
	book := NewPriceLevelBook(common.Buy)
	book.Add(10.00, "a", 100)

	assert.Equal(t, ReduceNotFound, book.Reduce(11.00, "a", 10))
	assert.Equal(t, ReduceNotFound, book.Reduce(10.00, "zz", 10))

	// A failed reduce leaves the book untouched.
	assert.Equal(t, map[float64]int64{10.00: 100}, levelQuantities(book))
	assert.Equal(t, int64(100), book.TotalQuantity())
}

func TestOrderIndex_RecordLookupErase(t *testing.T) {
	ix := NewOrderIndex()

	ix.Record("a", common.Buy, 10.00)
	ref, ok := ix.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, OrderRef{Side: common.Buy, Price: 10.00}, ref)

	// First occurrence wins.
	ix.Record("a", common.Sell, 99.00)
	ref, ok = ix.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, OrderRef{Side: common.Buy, Price: 10.00}, ref)

	ix.Erase("a")
	_, ok = ix.Lookup("a")
	assert.False(t, ok)
	assert.Zero(t, ix.Len())
}
