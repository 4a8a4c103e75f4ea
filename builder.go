// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Builder drives Apply over a clause-derived expression list to produce a
// single Diagram equivalent to a whole CNF formula.
type Builder struct {
	ord *Ordering
	cdb *ClauseDatabase
	log *logrus.Entry

	// ApproxPeriod is the builder-step interval at which round-up
	// approximation runs (default 20, via BuilderOption).
	ApproxPeriod int
	// GlobalResetPeriod is the builder-step interval at which the CDB's
	// global filter is cleared (default 30).
	GlobalResetPeriod int
}

// BuilderOption configures a Builder, following the teacher's functional
// option pattern (config.go's Nodesize/Cachesize).
type BuilderOption func(*Builder)

// ApproxPeriod overrides the default round-up cadence.
func ApproxPeriod(steps int) BuilderOption {
	return func(b *Builder) { b.ApproxPeriod = steps }
}

// GlobalResetPeriod overrides the default global-filter reset cadence.
func GlobalResetPeriod(steps int) BuilderOption {
	return func(b *Builder) { b.GlobalResetPeriod = steps }
}

// NewBuilder returns a Builder over the given Ordering and ClauseDatabase.
func NewBuilder(ord *Ordering, cdb *ClauseDatabase, opts ...BuilderOption) *Builder {
	b := &Builder{
		ord:               ord,
		cdb:               cdb,
		log:               logrus.WithField("component", "builder"),
		ApproxPeriod:      20,
		GlobalResetPeriod: 30,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build constructs a Diagram from a single Expr by recursive descent,
// combining And/Or subterms through Apply. Independent subterms may be
// built in parallel; And(l,r) and Or(l,r) each spawn their two operands
// concurrently via errgroup, the Go rendering of the original's
// rayon::join pairing.
func (b *Builder) Build(ctx context.Context, e Expr) *Diagram {
	switch n := e.(type) {
	case ConstExpr:
		return NewConst(n.Value)
	case VarExpr:
		return NewVar(n.Var)
	case NotExpr:
		return b.Build(ctx, n.Inner).Negate()
	case AndExpr:
		left, right := b.buildPair(ctx, n.Left, n.Right)
		return And(b.ord, left, right)
	case OrExpr:
		left, right := b.buildPair(ctx, n.Left, n.Right)
		return Or(b.ord, left, right)
	default:
		return NewFalse()
	}
}

func (b *Builder) buildPair(ctx context.Context, l, r Expr) (*Diagram, *Diagram) {
	var left, right *Diagram
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		left = b.Build(gctx, l)
		return nil
	})
	g.Go(func() error {
		right = b.Build(gctx, r)
		return nil
	})
	_ = g.Wait()
	return left, right
}

// ParallelBuild drives the whole clause list: it folds Build(exprs[0]) into
// a running diagram, then for each subsequent expression interleaves
// witness-clause export from the current diagram with building the next
// sub-diagram, conjoins the two, periodically resets the clause filters and
// round-up-approximates, and polls the build cancellation signal at three
// points in each step. recDepth is the caller's running step counter (incremented by 2
// per iteration, matching the "2 new clauses per step" accounting of the
// source this is grounded on); callers solving a single formula pass 0.
func (b *Builder) ParallelBuild(ctx context.Context, exprs []Expr, recDepth int, c *Coordinator) *Diagram {
	recDepth += 2
	cur := b.Build(ctx, exprs[0])

	for n := 1; n < len(exprs); n++ {
		if c.Cancelled(SignalBuild) {
			b.log.Info("terminating the bdd")
			break
		}

		if recDepth%b.GlobalResetPeriod == 0 {
			b.cdb.ResetGlobal()
		}
		b.cdb.ResetLocal()

		var tmp *Diagram
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			SendWitnessClauses(gctx, cur, b.ord, b.cdb, true, c)
			return nil
		})
		g.Go(func() error {
			tmp = b.Build(gctx, exprs[n])
			return nil
		})
		_ = g.Wait()

		cur = And(b.ord, cur, tmp)

		if c.Cancelled(SignalBuild) {
			b.log.Info("terminating the bdd")
			break
		}

		if recDepth%b.ApproxPeriod == 0 {
			RoundUp(cur, c)
		}
		b.log.WithField("size", cur.Size()).Debug("builder step")

		if c.Cancelled(SignalBuild) {
			b.log.Info("terminating the bdd")
			break
		}

		recDepth += 2
	}
	return cur
}

// AddClausesDuringBuild folds newly received clauses (from CDB.Receive)
// into the pending expression list, deduplicating against expressions
// already queued. This mirrors a step present in the original source;
// CDB.Receive is a documented no-op (see clausedb.go), so this path only
// runs when a caller feeds it a synthetic clause set, such as in tests.
func (b *Builder) AddClausesDuringBuild(pending []Expr, clausesToAdd [][]int32) []Expr {
	seen := make(map[Expr]bool, len(pending))
	for _, e := range pending {
		seen[e] = true
	}
	for _, clause := range clausesToAdd {
		e := parseClause(clause)
		if !seen[e] {
			seen[e] = true
			pending = append(pending, e)
		}
	}
	return pending
}
