package feed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/LuisNY/BookAnalyzer/internal/common"
)

const (
	addMarker    = "A"
	reduceMarker = "R"

	buySideToken = "B"
)

var (
	ErrBadLine     = errors.New("malformed feed line")
	ErrUnknownKind = errors.New("unknown event kind")
)

// Reader parses the line-oriented book feed into events. Lines are
// whitespace-delimited:
//
//	timestamp A id side price quantity
//	timestamp R id quantity
//
// where side is "B" for buy and anything else for sell, and price is a
// two-decimal currency amount.
type Reader struct {
	sc *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		sc: bufio.NewScanner(r),
	}
}

// Next returns the next event from the feed. io.EOF signals a clean end
// of input; any other error means the line could not be parsed, and the
// caller is expected to stop consuming there.
func (r *Reader) Next() (common.Event, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return parseLine(r.sc.Text())
}

func parseLine(line string) (common.Event, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrBadLine, line)
	}

	timestamp, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad timestamp %q", ErrBadLine, fields[0])
	}

	switch fields[1] {
	case addMarker:
		return parseAdd(timestamp, fields[2:])
	case reduceMarker:
		return parseReduce(timestamp, fields[2:])
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, fields[1])
	}
}

func parseAdd(timestamp int64, fields []string) (common.Event, error) {
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: add wants 4 fields, got %d", ErrBadLine, len(fields))
	}

	side := common.Sell
	if fields[1] == buySideToken {
		side = common.Buy
	}

	price, err := decimal.NewFromString(fields[2])
	if err != nil {
		return nil, fmt.Errorf("%w: bad price %q", ErrBadLine, fields[2])
	}
	qty, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad quantity %q", ErrBadLine, fields[3])
	}

	return common.AddOrder{
		Timestamp: timestamp,
		ID:        fields[0],
		Side:      side,
		Price:     price.InexactFloat64(),
		Quantity:  qty,
	}, nil
}

func parseReduce(timestamp int64, fields []string) (common.Event, error) {
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: reduce wants 2 fields, got %d", ErrBadLine, len(fields))
	}

	qty, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad quantity %q", ErrBadLine, fields[1])
	}

	return common.ReduceOrder{
		Timestamp: timestamp,
		ID:        fields[0],
		Quantity:  qty,
	}, nil
}
