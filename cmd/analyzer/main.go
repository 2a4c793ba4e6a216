package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"github.com/LuisNY/BookAnalyzer/internal/analyzer"
	"github.com/LuisNY/BookAnalyzer/internal/config"
	"github.com/LuisNY/BookAnalyzer/internal/feed"
	infralog "github.com/LuisNY/BookAnalyzer/internal/infra/log"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "optional yaml config file")
		input   = flag.String("input", "", "feed file, or - for stdin")
		target  = flag.Int64("target", 0, "target quantity to value")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to load config")
		}
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *target != 0 {
		cfg.Target = *target
	}

	logger := infralog.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("analyzer failed")
	}
}

func run(ctx context.Context, cfg config.Config) error {
	in := os.Stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	emitter := feed.NewEmitter(os.Stdout)
	ba, err := analyzer.New(cfg.Target, emitter)
	if err != nil {
		return err
	}

	// One goroutine owns the whole read/apply/emit loop; events are
	// strictly sequential. The tomb only carries shutdown.
	t, _ := tomb.WithContext(ctx)
	t.Go(func() error {
		defer func() {
			if err := emitter.Flush(); err != nil {
				log.Error().Err(err).Msg("unable to flush output")
			}
		}()

		reader := feed.NewReader(in)
		for {
			select {
			case <-t.Dying():
				return nil
			default:
			}

			ev, err := reader.Next()
			if err != nil {
				// An unparseable line ends consumption the same way
				// end-of-file does.
				if !errors.Is(err, io.EOF) {
					log.Debug().Err(err).Msg("stopping at unparseable line")
				}
				return nil
			}
			ba.Apply(ev)
		}
	})

	return t.Wait()
}
