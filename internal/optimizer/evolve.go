package optimizer

import (
	"math/rand"
	"sort"
)

// EvolveParams configures the (1+1) ES phase. Zero values fall back to the
// package defaults.
type EvolveParams struct {
	Runs            int
	N               int
	InitialSigma    float64
	StagnationLimit int
}

func defaultEvolveParams() EvolveParams {
	return EvolveParams{Runs: 5, N: 3, InitialSigma: 2.0, StagnationLimit: 200}
}

func (e EvolveParams) withDefaults() EvolveParams {
	d := defaultEvolveParams()
	if e.Runs <= 0 {
		e.Runs = d.Runs
	}
	if e.N <= 0 {
		e.N = d.N
	}
	if e.InitialSigma <= 0 {
		e.InitialSigma = d.InitialSigma
	}
	if e.StagnationLimit <= 0 {
		e.StagnationLimit = d.StagnationLimit
	}
	return e
}

// EvolveRunStats reports one run's outcome, informational only.
type EvolveRunStats struct {
	Iterations    int
	FinalHardCost int
	Converged     bool
}

// runEvolution drives hard-constraint cost toward zero with a (1+1)
// evolutionary strategy: each generation mutates the worst-scoring quarter
// of allocations via relocate, keeping the mutation only implicitly (there
// is no separate offspring copy; relocate either improves the shared
// candidate or is reverted by a later relocate). Step size sigma adapts by
// Schwefel's 1/5 success rule and carries across runs.
func (p *preprocessed) runEvolution(c *candidate, params EvolveParams, rng *rand.Rand) []EvolveRunStats {
	params = params.withDefaults()
	sigma := params.InitialSigma

	stats := make([]EvolveRunStats, 0, params.Runs)

	for run := 0; run < params.Runs; run++ {
		t := 0
		stagnation := 0
		successes := 0
		lastCost := 0
		converged := false

		for stagnation < params.StagnationLimit {
			before := p.hardCost(c)
			lastCost = before.total
			if before.total == 0 && p.checkHard(c) == 0 {
				converged = true
				break
			}

			costsList := make([]allocCost, 0, len(p.allocationOrder))
			for _, a := range p.allocationOrder {
				costsList = append(costsList, allocCost{allocation: a, cost: before.perAllocation[a]})
			}
			sort.SliceStable(costsList, func(i, j int) bool {
				return costsList[i].cost > costsList[j].cost
			})

			quarter := len(costsList) / 4
			for i := 0; i < quarter; i++ {
				if rng.Float64() < sigma && costsList[i].cost != 0 {
					p.relocate(c, costsList[i].allocation)
				}
			}

			after := p.hardCost(c)
			lastCost = after.total
			if after.total < before.total {
				stagnation = 0
				successes++
			} else {
				stagnation++
			}

			t++
			if t >= 10*params.N && t%params.N == 0 {
				if successes < 2*params.N {
					sigma *= 0.85
				} else {
					sigma /= 0.85
				}
				successes = 0
			}
		}

		stats = append(stats, EvolveRunStats{Iterations: t, FinalHardCost: lastCost, Converged: converged})
		if converged {
			break
		}
	}

	return stats
}

type allocCost struct {
	allocation int
	cost       int
}
