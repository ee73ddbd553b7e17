package optimizer

import "timetable-optimizer/pkg/apperrors"

// validateInvariants re-checks the candidate's structural invariants and
// raises an InvariantViolation if any is broken. It is
// called once after the search phases complete; relocate and place/unplace
// are expected to never break these, so a failure here is a bug in the
// bookkeeping, not a data problem.
func validateInvariants(p *preprocessed, c *candidate) {
	seen := make(map[rowCol]int, totalRows*c.numRooms)

	for a, cells := range c.filled {
		alloc, ok := p.data.ClassAllocations[a]
		if !ok {
			apperrors.Raise("filled references unknown allocation")
		}
		if len(cells) != alloc.Duration {
			apperrors.Raise("filled length does not match allocation duration")
		}
		for i, rc := range cells {
			if c.matrix[rc.Row][rc.Col] != a {
				apperrors.Raise("matrix cell does not match filled allocation")
			}
			if c.isFree(rc) {
				apperrors.Raise("filled cell also present in free")
			}
			if i > 0 {
				prev := cells[i-1]
				if rc.Col != prev.Col || rc.Row != prev.Row+1 {
					apperrors.Raise("filled cells are not consecutive rows in one column")
				}
			}
			seen[rc]++
		}
		if !fits(cells[0].Row, alloc.Duration) {
			apperrors.Raise("filled block spans more than one day")
		}
	}

	for _, rc := range c.free {
		if c.matrix[rc.Row][rc.Col] != -1 {
			apperrors.Raise("free cell is occupied in matrix")
		}
		seen[rc]++
	}

	for row := 0; row < totalRows; row++ {
		for col := 0; col < c.numRooms; col++ {
			rc := rowCol{Row: row, Col: col}
			if seen[rc] != 1 {
				apperrors.Raise("free and filled do not partition the grid")
			}
		}
	}

	wantGroups := make(map[int][]int)
	wantTeachers := make(map[int][]int)
	for a, cells := range c.filled {
		alloc := p.data.ClassAllocations[a]
		for _, rc := range cells {
			wantGroups[alloc.ClassGroup.ID] = append(wantGroups[alloc.ClassGroup.ID], rc.Row)
			wantTeachers[alloc.Teacher.ID] = append(wantTeachers[alloc.Teacher.ID], rc.Row)
		}
	}
	if !multisetsEqual(wantGroups, c.groupsEmptySpace) {
		apperrors.Raise("groups empty-space multiset does not match placements")
	}
	if !multisetsEqual(wantTeachers, c.teachersEmptySpace) {
		apperrors.Raise("teachers empty-space multiset does not match placements")
	}
}

func multisetsEqual(want, got map[int][]int) bool {
	for key, rows := range got {
		if len(rows) != len(want[key]) {
			return false
		}
	}
	for key, rows := range want {
		counts := make(map[int]int, len(rows))
		for _, r := range rows {
			counts[r]++
		}
		for _, r := range got[key] {
			counts[r]--
		}
		for _, n := range counts {
			if n != 0 {
				return false
			}
		}
	}
	return true
}
