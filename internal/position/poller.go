// Package position polls playback positions of a set of pipelines.
package position

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

const DefaultInterval = time.Second

type Source interface {
	Name() string
	Position() (time.Duration, error)
	Duration() (time.Duration, error)
}

// Report is one position sample. Index is the source's index in the
// Poller's Sources.
type Report struct {
	Index    int
	Name     string
	Position time.Duration
	Duration time.Duration
	// Valid is false when the position query failed.
	Valid bool
}

type Poller struct {
	Interval time.Duration
	Sources  []Source
	OnReport func(Report)
}

// Run samples every source once per interval until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	g, ctx := errgroup.WithContext(ctx)
	for idx, src := range p.Sources {
		g.Go(func() error {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					p.OnReport(sample(idx, src))
				}
			}
		})
	}
	return g.Wait()
}

func sample(idx int, src Source) Report {
	r := Report{Index: idx, Name: src.Name()}
	pos, err := src.Position()
	if err != nil {
		return r
	}
	r.Position, r.Valid = pos, true
	if dur, err := src.Duration(); err == nil {
		r.Duration = dur
	}
	return r
}
