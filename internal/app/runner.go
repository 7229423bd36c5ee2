// Package app drives a simulation against a frame writer at a fixed
// cadence.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"text-ca/internal/core"
	"text-ca/internal/render"
)

// Config tunes a Runner. The zero value runs at core.DefaultInterval
// with no step budget, logging through slog.Default.
type Config struct {
	// Interval is the frame cadence. Zero falls back to
	// core.DefaultInterval.
	Interval time.Duration

	// MaxSteps stops the run after this many generations. Zero runs
	// until the context is cancelled.
	MaxSteps uint64

	Logger *slog.Logger
}

// Runner renders a simulation frame by frame: draw, wait, step. Every
// run carries a unique token that tags all of its log records.
type Runner struct {
	sim    core.Simulation
	frames *render.FrameWriter
	pacer  *core.Pacer
	max    uint64
	log    *slog.Logger
	token  string
}

// New constructs a Runner for sim writing through frames.
func New(sim core.Simulation, frames *render.FrameWriter, cfg Config) *Runner {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		sim:    sim,
		frames: frames,
		pacer:  core.NewPacer(cfg.Interval),
		max:    cfg.MaxSteps,
		log:    log,
		token:  uuid.Must(uuid.NewV7()).String(),
	}
}

// Token returns the identifier attached to this run's log records.
func (r *Runner) Token() string {
	return r.token
}

// Run loops until the step budget is spent or ctx is cancelled. The
// initial grid is rendered before the first step, so generation zero is
// always visible. Cancellation is reported as the context's error.
func (r *Runner) Run(ctx context.Context) error {
	log := r.log.With("run", r.token, "sim", r.sim.Name())
	size := r.sim.Size()
	log.Info("run started",
		"width", size.W,
		"height", size.H,
		"interval", r.pacer.Interval(),
		"max_steps", r.max,
	)

	for {
		c := r.sim.Census()
		if err := r.frames.WriteFrame(r.sim.Render(), c, r.sim.Name()); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		log.Debug("frame", "generation", c.Generation, "population", c.Population)

		if r.max > 0 && c.Generation >= r.max {
			log.Info("run finished", "generation", c.Generation, "population", c.Population)
			return nil
		}
		if err := r.pacer.Wait(ctx); err != nil {
			log.Info("run cancelled", "generation", c.Generation)
			return err
		}
		r.sim.Step()
	}
}
