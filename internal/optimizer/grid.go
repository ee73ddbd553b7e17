package optimizer

// Grid constants: 5 working days, 12 hourly slots per day starting 07:00,
// 60 rows total. Column count is the number of classrooms.
const (
	daysPerWeek     = 5
	slotsPerDay     = 12
	totalRows       = daysPerWeek * slotsPerDay
	firstHourOfDay  = 7
)

var weekdayNames = [daysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// rowCol is a single (time, room) cell in the grid.
type rowCol struct {
	Row, Col int
}

// candidate is the mutable timetable-in-progress. Entities are immutable;
// only this structure is mutated, exclusively by the functions in
// placement.go, evolve.go, and anneal.go.
//
// Invariants, maintained between every atomic move:
//  1. matrix[r][c] == a  <=>  (r,c) is in filled[a] and not in free.
//  2. len(filled[a]) == allocation[a].Duration when a is placed; the cells
//     are duration consecutive rows in one column, within a single day.
//  3. free ∪ ⋃filled == every (row, col) cell, disjoint union.
//  4. groupsEmptySpace[g] is exactly the multiset of rows some placed
//     allocation of group g occupies.
//  5. teachersEmptySpace[t] is exactly the multiset of rows some placed
//     allocation of teacher t occupies.
type candidate struct {
	numRooms int
	matrix   [][]int // matrix[row][col] == allocation index, or -1 if empty
	free     []rowCol
	filled   map[int][]rowCol // allocation index -> ordered cells

	groupsEmptySpace   map[int][]int // class group id -> occupied rows (multiset)
	teachersEmptySpace map[int][]int // teacher id -> occupied rows (multiset)
}

// newCandidate builds an empty 60×numRooms grid with every cell free, in
// row-major iteration order. The greedy initial placement depends on this
// ordering of free.
func newCandidate(numRooms int) *candidate {
	c := &candidate{
		numRooms:           numRooms,
		matrix:             make([][]int, totalRows),
		free:               make([]rowCol, 0, totalRows*numRooms),
		filled:             make(map[int][]rowCol),
		groupsEmptySpace:   make(map[int][]int),
		teachersEmptySpace: make(map[int][]int),
	}
	for row := 0; row < totalRows; row++ {
		c.matrix[row] = make([]int, numRooms)
		for col := 0; col < numRooms; col++ {
			c.matrix[row][col] = -1
			c.free = append(c.free, rowCol{Row: row, Col: col})
		}
	}
	return c
}

// dayOf returns the 0-4 (Mon..Fri) day index for row.
func dayOf(row int) int { return row / slotsPerDay }

// hourOfDay returns the within-day slot, 0-11.
func hourOfDay(row int) int { return row % slotsPerDay }

// fits reports whether a block of duration hours starting at startRow stays
// within a single day, i.e. never spans midnight into the next day.
func fits(startRow, duration int) bool {
	return hourOfDay(startRow)+duration <= slotsPerDay
}

func (c *candidate) isFree(rc rowCol) bool {
	for _, f := range c.free {
		if f == rc {
			return true
		}
	}
	return false
}

func (c *candidate) removeFree(rc rowCol) {
	for i, f := range c.free {
		if f == rc {
			c.free = append(c.free[:i], c.free[i+1:]...)
			return
		}
	}
}

func (c *candidate) addFree(rc rowCol) {
	c.free = append(c.free, rc)
}

func removeOneInt(xs []int, v int) []int {
	for i, x := range xs {
		if x == v {
			return append(xs[:i], xs[i+1:]...)
		}
	}
	return xs
}
