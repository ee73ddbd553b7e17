package optimizer

import (
	"math"
	"math/rand"
)

// AnnealParams configures the geometric-cooling simulated annealing phase.
// Zero values fall back to the package defaults.
type AnnealParams struct {
	Iterations  int
	Temperature float64
	Alpha       float64
}

func defaultAnnealParams() AnnealParams {
	return AnnealParams{Iterations: 2500, Temperature: 0.5, Alpha: 0.99}
}

func (a AnnealParams) withDefaults() AnnealParams {
	d := defaultAnnealParams()
	if a.Iterations <= 0 {
		a.Iterations = d.Iterations
	}
	if a.Temperature <= 0 {
		a.Temperature = d.Temperature
	}
	if a.Alpha <= 0 {
		a.Alpha = d.Alpha
	}
	return a
}

// moveRecord captures enough of a relocate call to invert it: the
// allocation's block position before the mutation round touched it. Undoing
// a round replays these in reverse, which is equivalent to (and far cheaper
// than) a full deep-copy restore since relocate's net effect on any single
// allocation is just "was at oldStart, now somewhere else".
type moveRecord struct {
	allocation int
	wasPlaced  bool
	oldStart   rowCol
}

// annealStats reports the soft-cost trajectory; Optimize copies it into
// RunStats.
type annealStats struct {
	groupCostBefore float64
	groupCostAfter  float64
	accepted        int
	rejected        int
}

// runAnnealing minimizes the average per-week group idle-gap cost via
// geometric-cooling simulated annealing, while never letting a mutation
// round's hard-constraint feasibility regress below what relocate already
// guarantees (relocate itself only ever produces valid placements).
//
// Each iteration snapshots the pre-mutation placement of every allocation it
// is about to touch (not the whole grid), attempts (number of allocations)/4
// random relocations, and either keeps the result or replays the recorded moves in
// reverse to restore the prior state exactly.
func (p *preprocessed) runAnnealing(c *candidate, params AnnealParams, rng *rand.Rand) annealStats {
	params = params.withDefaults()
	temperature := params.Temperature

	_, _, currentCost := emptySpaceCost(c.groupsEmptySpace)
	stats := annealStats{groupCostBefore: currentCost}

	numAllocations := len(p.allocationOrder)
	batch := numAllocations / 4

	for i := 0; i < params.Iterations; i++ {
		u := rng.Float64()
		temperature *= params.Alpha

		journal := make([]moveRecord, 0, batch)
		for j := 0; j < batch; j++ {
			a := p.allocationOrder[rng.Intn(numAllocations)]
			rec := moveRecord{allocation: a}
			if cells, ok := c.filled[a]; ok {
				rec.wasPlaced = true
				rec.oldStart = cells[0]
			}
			p.relocate(c, a)
			journal = append(journal, rec)
		}

		_, _, newCost := emptySpaceCost(c.groupsEmptySpace)

		if newCost < currentCost || u <= math.Exp((currentCost-newCost)/temperature) {
			currentCost = newCost
			stats.accepted++
		} else {
			p.undoJournal(c, journal)
			stats.rejected++
		}
	}

	stats.groupCostAfter = currentCost
	return stats
}

// undoJournal replays moveRecords in reverse order, restoring each touched
// allocation to its pre-round placement.
func (p *preprocessed) undoJournal(c *candidate, journal []moveRecord) {
	for i := len(journal) - 1; i >= 0; i-- {
		rec := journal[i]
		p.unplace(c, rec.allocation)
		if rec.wasPlaced {
			p.place(c, rec.allocation, rec.oldStart)
		}
	}
}
