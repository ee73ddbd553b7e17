package optimizer

// place writes allocation a's duration-row block starting at start into the
// matrix, removes those cells from free, and records the bookkeeping
// (filled, per-group and per-teacher occupied-row multisets). Callers must
// have already verified the block is free and admissible.
func (p *preprocessed) place(c *candidate, a int, start rowCol) {
	alloc := p.data.ClassAllocations[a]
	cells := make([]rowCol, 0, alloc.Duration)
	for k := 0; k < alloc.Duration; k++ {
		rc := rowCol{Row: start.Row + k, Col: start.Col}
		cells = append(cells, rc)
		c.removeFree(rc)
		c.matrix[rc.Row][rc.Col] = a
		c.groupsEmptySpace[alloc.ClassGroup.ID] = append(c.groupsEmptySpace[alloc.ClassGroup.ID], rc.Row)
		c.teachersEmptySpace[alloc.Teacher.ID] = append(c.teachersEmptySpace[alloc.Teacher.ID], rc.Row)
	}
	c.filled[a] = append(c.filled[a], cells...)
}

// unplace removes allocation a's current placement, returning its cells to
// free and trimming one occurrence per row from the empty-space multisets.
// It is a no-op if a is not currently placed.
func (p *preprocessed) unplace(c *candidate, a int) {
	cells, ok := c.filled[a]
	if !ok {
		return
	}
	alloc := p.data.ClassAllocations[a]
	delete(c.filled, a)

	for _, rc := range cells {
		c.matrix[rc.Row][rc.Col] = -1
		c.addFree(rc)
		c.groupsEmptySpace[alloc.ClassGroup.ID] = removeOneInt(c.groupsEmptySpace[alloc.ClassGroup.ID], rc.Row)
		c.teachersEmptySpace[alloc.Teacher.ID] = removeOneInt(c.teachersEmptySpace[alloc.Teacher.ID], rc.Row)
	}
}

// blockFits reports whether allocation a's full duration block, starting at
// start, lies entirely within free and within a single day.
func (c *candidate) blockFits(start rowCol, duration int) bool {
	if !fits(start.Row, duration) {
		return false
	}
	for k := 0; k < duration; k++ {
		if !c.isFree(rowCol{Row: start.Row + k, Col: start.Col}) {
			return false
		}
	}
	return true
}

// initialPlacement greedily places every allocation, in ascending index
// order, at the first admissible free slot encountered while walking free
// in its current iteration order. Allocations with no admissible slot are
// left unplaced.
func (p *preprocessed) initialPlacement(c *candidate) {
	for _, a := range p.allocationOrder {
		alloc := p.data.ClassAllocations[a]
		for ind := 0; ind < len(c.free); ind++ {
			start := c.free[ind]
			if !fits(start.Row, alloc.Duration) {
				continue
			}
			if !p.possibleClassrooms[a][start.Col] {
				continue
			}
			if !c.blockFits(start, alloc.Duration) {
				continue
			}
			p.place(c, a, start)
			break
		}
	}
}

// validPlacement reports whether row r is usable for allocation a: the
// teacher is available (or unrestricted) at r, and no occupant of row r
// shares a's teacher or class group. The allocation's own current cells
// count as occupants too, so a block can never relocate onto a row it
// already spans.
func (p *preprocessed) validPlacement(c *candidate, a, r int) bool {
	alloc := p.data.ClassAllocations[a]

	if ids := p.data.TeacherAvailableSchedules(alloc.Teacher.ID); ids != nil {
		scheduleID, ok := mapRowToSchedule(r, p.data.Schedules)
		if !ok || !containsInt(ids, scheduleID) {
			return false
		}
	}

	for col := 0; col < c.numRooms; col++ {
		other := c.matrix[r][col]
		if other < 0 {
			continue
		}
		otherAlloc := p.data.ClassAllocations[other]
		if otherAlloc.Teacher.ID == alloc.Teacher.ID {
			return false
		}
		if otherAlloc.ClassGroup.ID == alloc.ClassGroup.ID {
			return false
		}
	}
	return true
}

// relocate searches for a new slot for allocation a that is free, admissible,
// and valid at every row of the block (no teacher/group conflict, teacher
// available), then atomically moves a there. If a is not currently placed,
// or no qualifying slot exists, the candidate is left unchanged.
func (p *preprocessed) relocate(c *candidate, a int) {
	if _, ok := c.filled[a]; !ok {
		return
	}
	alloc := p.data.ClassAllocations[a]

	for ind := 0; ind < len(c.free); ind++ {
		start := c.free[ind]
		if !fits(start.Row, alloc.Duration) {
			continue
		}
		if !p.possibleClassrooms[a][start.Col] {
			continue
		}

		qualifies := true
		for k := 0; k < alloc.Duration; k++ {
			rc := rowCol{Row: start.Row + k, Col: start.Col}
			if !c.isFree(rc) || !p.validPlacement(c, a, rc.Row) {
				qualifies = false
				break
			}
		}
		if !qualifies {
			continue
		}

		p.unplace(c, a)
		p.place(c, a, start)
		return
	}
}
