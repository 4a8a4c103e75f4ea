// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import (
	"context"
	"sync"

	"github.com/kondylidou/master-thes-code/cdcl"
	"golang.org/x/sync/errgroup"
)

// Signal names one of the three one-shot cancellation channels a
// Coordinator manages. Each BDD-side loop (Builder, the witness exporter,
// the approximator) polls its own channel; Cancel closes all three at
// once, so there is no way to stop one loop while the others continue.
type Signal int

const (
	SignalBuild Signal = iota
	SignalWitness
	SignalApprox
	numSignals
)

// Coordinator owns the cancellation channels binding a CDCL worker to the
// BDD side, and the errgroup join point running both concurrently.
//
// Signalling is single-producer/multi-consumer and idempotent: Cancel
// closes each channel at most once via sync.Once, so any number of
// pollers observe the same close exactly once. Cancellation is
// one-directional: only the CDCL side ever calls Cancel (see Run); the
// BDD side discarding its own in-progress diagram on cancellation never
// signals back, since the CDCL solver is the authoritative decision
// procedure.
type Coordinator struct {
	channels [numSignals]chan struct{}
	closers  [numSignals]func()
}

// NewCoordinator returns a Coordinator with all three signals open.
func NewCoordinator() *Coordinator {
	c := &Coordinator{}
	for i := range c.channels {
		ch := make(chan struct{})
		c.channels[i] = ch
		var once closeOnce
		c.closers[i] = func() { once.do(ch) }
	}
	return c
}

type closeOnce struct {
	once sync.Once
}

func (o *closeOnce) do(ch chan struct{}) {
	o.once.Do(func() { close(ch) })
}

// Cancel closes each of c's three channels exactly once, across however
// many times Cancel is called. All three signals fire together.
func (c *Coordinator) Cancel() {
	for _, closer := range c.closers {
		closer()
	}
}

// Cancelled performs the non-blocking poll every BDD-side loop uses at its
// safe points: it reports true once Cancel has been called, without
// blocking if it has not.
func (c *Coordinator) Cancelled(s Signal) bool {
	select {
	case <-c.channels[s]:
		return true
	default:
		return false
	}
}

// Run joins a CDCL goroutine and a BDD goroutine, mirroring the
// rayon::join(run_glucose_parallel, parallel_build) pairing this module is
// grounded on: runCDCL drives solver.Solve and, on completion, cancels the
// BDD side via c.Cancel (CDCL termination always cancels the BDD side);
// runBDD drives Builder.ParallelBuild and never cancels the CDCL side back.
// Run blocks until both finish and returns the BDD worker's diagram.
func Run(ctx context.Context, c *Coordinator, runCDCL func(context.Context) error, runBDD func(context.Context) *Diagram) (*Diagram, error) {
	var result *Diagram
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := runCDCL(gctx)
		c.Cancel()
		return err
	})
	g.Go(func() error {
		result = runBDD(gctx)
		return nil
	})
	err := g.Wait()
	return result, err
}

// runGlucoseStyle is the CDCL-goroutine shape Run expects: call solver.Solve
// once, then let Run's wrapper cancel the BDD side. Kept as a named helper
// so callers do not need to remember the cancel-after-solve contract.
func runGlucoseStyle(solver cdcl.Solver) func(context.Context) error {
	return func(context.Context) error {
		solver.Solve()
		return nil
	}
}
