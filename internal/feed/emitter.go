package feed

import (
	"bufio"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/LuisNY/BookAnalyzer/internal/common"
)

const naToken = "NA"

// Emitter renders the analyzer's decisions as output lines:
//
//	timestamp LABEL amount
//	timestamp LABEL NA
//
// Amounts are printed with fixed two-decimal precision. The labels
// deliberately cross sides: a buy-side valuation (the income of selling
// the target) carries "S", a sell-side valuation (the expense of buying
// it) carries "B". Downstream consumers depend on exactly this mapping.
type Emitter struct {
	w *bufio.Writer
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		w: bufio.NewWriter(w),
	}
}

func (e *Emitter) Valuation(timestamp int64, side common.Side, amount float64) {
	e.writeLine(timestamp, side, decimal.NewFromFloat(amount).StringFixed(2))
}

func (e *Emitter) NoLiquidity(timestamp int64, side common.Side) {
	e.writeLine(timestamp, side, naToken)
}

func (e *Emitter) writeLine(timestamp int64, side common.Side, value string) {
	e.w.WriteString(strconv.FormatInt(timestamp, 10))
	e.w.WriteByte(' ')
	e.w.WriteString(sideLabel(side))
	e.w.WriteByte(' ')
	e.w.WriteString(value)
	e.w.WriteByte('\n')
}

func (e *Emitter) Flush() error {
	return e.w.Flush()
}

func sideLabel(side common.Side) string {
	if side == common.Buy {
		return "S"
	}
	return "B"
}
