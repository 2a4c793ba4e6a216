// feedgen writes a synthetic book feed for soak testing the analyzer:
// adds around a midpoint price with occasional partial and full reduces
// of orders still resting.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type liveOrder struct {
	id  string
	qty int64
}

func main() {
	var (
		n      = flag.Int("n", 10000, "number of events to generate")
		seed   = flag.Int64("seed", 1, "rng seed")
		mid    = flag.Float64("mid", 44.50, "midpoint price")
		maxQty = flag.Int64("max-qty", 500, "max order quantity")
		out    = flag.String("out", "-", "output file, or - for stdout")
	)
	flag.Parse()

	f := os.Stdout
	if *out != "-" {
		var err error
		f, err = os.Create(*out)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to create output file")
		}
		defer f.Close()
	}

	w := bufio.NewWriter(f)
	defer w.Flush()

	rng := rand.New(rand.NewSource(*seed))
	var live []liveOrder

	// Milliseconds since midnight, market-open-ish.
	timestamp := int64(28800000)

	for i := 0; i < *n; i++ {
		timestamp += rng.Int63n(50)

		if len(live) > 0 && rng.Float64() < 0.4 {
			pick := rng.Intn(len(live))
			o := &live[pick]
			qty := rng.Int63n(o.qty) + 1
			fmt.Fprintf(w, "%d R %s %d\n", timestamp, o.id, qty)

			o.qty -= qty
			if o.qty <= 0 {
				live[pick] = live[len(live)-1]
				live = live[:len(live)-1]
			}
			continue
		}

		id := uuid.NewString()[:8]
		qty := rng.Int63n(*maxQty) + 1
		offset := rng.Float64() * 2

		side := "S"
		price := *mid + offset
		if rng.Intn(2) == 0 {
			side = "B"
			price = *mid - offset
		}

		fmt.Fprintf(w, "%d A %s %s %.2f %d\n", timestamp, id, side, price, qty)
		live = append(live, liveOrder{id: id, qty: qty})
	}
}
