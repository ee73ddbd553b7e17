package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A trivial single class places at row 0, col 0.
func TestScenarioTrivialSingleClass(t *testing.T) {
	data := buildData(
		[]testRoom{{id: 1, spType: 10}},
		[]testAllocation{{id: 0, groupID: 1, teacherID: 1, subjectID: 1, spType: 10, duration: 1}},
		nil,
	)
	p, err := preprocess(data)
	require.NoError(t, err)

	c := newCandidate(p.numRooms())
	p.initialPlacement(c)

	cells, ok := c.filled[0]
	require.True(t, ok)
	require.Equal(t, rowCol{Row: 0, Col: 0}, cells[0])
	require.Equal(t, 0, p.hardCost(c).total)
	total, _, _ := emptySpaceCost(c.groupsEmptySpace)
	require.Equal(t, 0, total)
}

// Two allocations sharing a teacher, two admissible rooms.
// relocate must be able to separate them into distinct rows.
func TestScenarioTeacherConflictResolvable(t *testing.T) {
	data := buildData(
		[]testRoom{{id: 1, spType: 10}, {id: 2, spType: 10}},
		[]testAllocation{
			{id: 0, groupID: 1, teacherID: 1, subjectID: 1, spType: 10, duration: 1},
			{id: 1, groupID: 2, teacherID: 1, subjectID: 2, spType: 10, duration: 1},
		},
		nil,
	)
	p, err := preprocess(data)
	require.NoError(t, err)

	c := newCandidate(p.numRooms())
	p.initialPlacement(c)

	// The greedy pass only checks free/room-type, not teacher conflicts, so
	// both allocations land in row 0 at distinct columns: a real conflict.
	require.Equal(t, c.filled[0][0].Row, c.filled[1][0].Row)
	require.Greater(t, p.hardCost(c).total, 0)

	for i := 0; i < 50 && p.hardCost(c).total > 0; i++ {
		p.relocate(c, 0)
		p.relocate(c, 1)
	}

	require.Equal(t, 0, p.hardCost(c).total)
	cells0 := c.filled[0]
	cells1 := c.filled[1]
	require.NotEqual(t, cells0[0].Row, cells1[0].Row)
	require.Len(t, c.filled, 2)
}

// A 3-hour allocation must occupy 3 consecutive rows in one column, and
// never start at row%12 in {10, 11}.
func TestScenarioDurationSpanning(t *testing.T) {
	data := buildData(
		[]testRoom{{id: 1, spType: 10}},
		[]testAllocation{{id: 0, groupID: 1, teacherID: 1, subjectID: 1, spType: 10, duration: 3}},
		nil,
	)
	p, err := preprocess(data)
	require.NoError(t, err)

	c := newCandidate(p.numRooms())
	p.initialPlacement(c)

	cells, ok := c.filled[0]
	require.True(t, ok)
	require.Len(t, cells, 3)
	for i := 1; i < len(cells); i++ {
		require.Equal(t, cells[0].Col, cells[i].Col)
		require.Equal(t, cells[i-1].Row+1, cells[i].Row)
	}
	require.LessOrEqual(t, hourOfDay(cells[0].Row), 9)
}

// A subject requiring a space type no non-blocked room offers stays
// unplaced and contributes zero hard cost.
func TestScenarioInfeasibleSpaceType(t *testing.T) {
	data := buildData(
		[]testRoom{{id: 1, spType: 10}},
		[]testAllocation{{id: 0, groupID: 1, teacherID: 1, subjectID: 1, spType: 999, duration: 1}},
		nil,
	)
	p, err := preprocess(data)
	require.NoError(t, err)

	c := newCandidate(p.numRooms())
	p.initialPlacement(c)

	_, placed := c.filled[0]
	require.False(t, placed)
	require.Equal(t, 0, p.hardCost(c).total)

	result := p.project(c)
	require.Empty(t, result.Schedule)
	require.Equal(t, 1, result.Statistics.TotalAllocations)
}

func TestRelocateNoOpWhenAllocationUnplaced(t *testing.T) {
	data := buildData(
		[]testRoom{{id: 1, spType: 10}},
		[]testAllocation{{id: 0, groupID: 1, teacherID: 1, subjectID: 1, spType: 999, duration: 1}},
		nil,
	)
	p, err := preprocess(data)
	require.NoError(t, err)

	c := newCandidate(p.numRooms())
	p.relocate(c, 0)
	_, placed := c.filled[0]
	require.False(t, placed)
}
