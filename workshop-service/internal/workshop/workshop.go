// Package workshop wires the holdings graph into a single object exposing
// every query and export operation:
//   - internal/query:   WorkshopQueryService (pure reads over the graph)
//   - internal/command: ExportCommandService (console and file output)
package workshop

import (
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/eaglebank/workshop/workshop-service/internal/command"
	"github.com/eaglebank/workshop/workshop-service/internal/query"
	"github.com/eaglebank/workshop/workshop-service/internal/repository"
)

type Workshop struct {
	*query.WorkshopQueryService
	*command.ExportCommandService
}

type options struct {
	console io.Writer
	rng     query.RandomSource
}

type Option func(*options)

// WithConsole redirects console output. Defaults to os.Stdout.
func WithConsole(w io.Writer) Option {
	return func(o *options) { o.console = w }
}

// WithRandomSource replaces the source used by RandomUsers. Defaults to a PCG
// generator seeded from the clock.
func WithRandomSource(rng query.RandomSource) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed seeds the default PCG generator, making RandomUsers repeatable.
func WithSeed(seed uint64) Option {
	return WithRandomSource(rand.New(rand.NewPCG(seed, seed)))
}

func New(opts ...Option) (*Workshop, error) {
	now := uint64(time.Now().UnixNano())
	o := options{
		console: os.Stdout,
		rng:     rand.New(rand.NewPCG(now, now>>32)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	repo, err := repository.NewHoldingRepository()
	if err != nil {
		return nil, err
	}
	querySvc := query.NewWorkshopQueryService(repo, o.console, o.rng)
	commandSvc := command.NewExportCommandService(repo, o.console)

	return &Workshop{
		WorkshopQueryService: querySvc,
		ExportCommandService: commandSvc,
	}, nil
}
