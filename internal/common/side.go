package common

type Side int

const (
	Buy Side = iota
	Sell
)

const NumSides = 2

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	}
	return "unknown"
}
