package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreprocessPossibleClassrooms(t *testing.T) {
	data := buildData(
		[]testRoom{{id: 1, spType: 10}, {id: 2, spType: 20}, {id: 3, spType: 10, blocked: true}},
		[]testAllocation{{id: 0, groupID: 1, teacherID: 1, subjectID: 1, spType: 10, duration: 1}},
		nil,
	)

	p, err := preprocess(data)
	require.NoError(t, err)

	// Columns are assigned by ascending classroom id: col 0 -> room 1, col 1 -> room 2, col 2 -> room 3.
	require.True(t, p.possibleClassrooms[0][0])
	require.False(t, p.possibleClassrooms[0][1], "wrong space type must not be admissible")
	require.False(t, p.possibleClassrooms[0][2], "blocked room must not be admissible even with matching space type")
}

func TestOversizedDurationNeverPlaces(t *testing.T) {
	data := buildData(
		[]testRoom{{id: 1, spType: 10}},
		[]testAllocation{{id: 0, groupID: 1, teacherID: 1, subjectID: 1, spType: 10, duration: 13}},
		nil,
	)

	p, err := preprocess(data)
	require.NoError(t, err)

	c := newCandidate(p.numRooms())
	p.initialPlacement(c)

	_, placed := c.filled[0]
	require.False(t, placed, "a 13-hour allocation cannot fit any day and must stay unplaced")
	require.Equal(t, 0, p.hardCost(c).total)
}

func TestPreprocessAllowsFullDayDuration(t *testing.T) {
	data := buildData(
		[]testRoom{{id: 1, spType: 10}},
		[]testAllocation{{id: 0, groupID: 1, teacherID: 1, subjectID: 1, spType: 10, duration: 12}},
		nil,
	)

	_, err := preprocess(data)
	require.NoError(t, err)
}

func TestPreprocessEmptySpaceTypeLeavesNoAdmissibleColumns(t *testing.T) {
	data := buildData(
		[]testRoom{{id: 1, spType: 10}},
		[]testAllocation{{id: 0, groupID: 1, teacherID: 1, subjectID: 1, spType: 999, duration: 1}},
		nil,
	)

	p, err := preprocess(data)
	require.NoError(t, err)
	require.Empty(t, p.possibleClassrooms[0])
}
