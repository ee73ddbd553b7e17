// Package optimizer computes a weekly class timetable: it places every
// allocation (class group + subject + teacher + duration) onto a 60-row by
// R-column grid, drives hard-constraint conflicts to zero with a (1+1)
// evolutionary strategy, then minimizes idle-gap soft cost with simulated
// annealing.
package optimizer

import (
	"math/rand"
	"time"

	"timetable-optimizer/internal/domain"
	"timetable-optimizer/pkg/apperrors"
)

// Option customizes a single Optimize call.
type Option func(*options)

type options struct {
	rng    *rand.Rand
	evolve EvolveParams
	anneal AnnealParams
}

// WithSeed makes the run reproducible: identical input plus identical seed
// yields an identical Result.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects a caller-owned random source. WithSeed and WithRand set
// the same source, so if both are given the later one in the list wins.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithEvolveParams overrides the evolutionary phase's parameters.
func WithEvolveParams(p EvolveParams) Option {
	return func(o *options) { o.evolve = p }
}

// WithAnnealParams overrides the annealing phase's parameters.
func WithAnnealParams(p AnnealParams) Option {
	return func(o *options) { o.anneal = p }
}

// RunStats carries non-authoritative diagnostics about how the search
// proceeded; callers that only need the schedule can ignore it.
type RunStats struct {
	EvolveRuns      []EvolveRunStats
	AnnealAccepted  int
	AnnealRejected  int
	GroupCostBefore float64
	GroupCostAfter  float64
}

// Optimize is the core pure function: entities in, a placed schedule and
// its statistics out. It never performs I/O and never retries; a DataError
// means the input itself is unusable, an InvariantViolation means a
// structural bug in the candidate bookkeeping was detected and recovered at
// this boundary.
func Optimize(data domain.TimetableData, opts ...Option) (result *Result, stats *RunStats, err error) {
	o := &options{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, apply := range opts {
		apply(o)
	}

	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*apperrors.InvariantViolation); ok {
				err = iv
				return
			}
			panic(r)
		}
	}()

	p, perr := preprocess(data)
	if perr != nil {
		return nil, nil, perr
	}

	c := newCandidate(p.numRooms())
	p.initialPlacement(c)

	evolveStats := p.runEvolution(c, o.evolve, o.rng)
	annealStats := p.runAnnealing(c, o.anneal, o.rng)

	res := p.project(c)
	validateInvariants(p, c)

	return &res, &RunStats{
		EvolveRuns:      evolveStats,
		AnnealAccepted:  annealStats.accepted,
		AnnealRejected:  annealStats.rejected,
		GroupCostBefore: annealStats.groupCostBefore,
		GroupCostAfter:  annealStats.groupCostAfter,
	}, nil
}
