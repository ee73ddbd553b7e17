package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"timetable-optimizer/internal/optimizer"
)

func TestExportResultToJSONGroupsByDay(t *testing.T) {
	result := &optimizer.Result{
		Schedule: []optimizer.ScheduleEntry{
			{
				AllocationID: 1,
				ClassGroup:   optimizer.ClassGroupRef{ID: 1, Name: "CS-1"},
				Subject:      optimizer.SubjectRef{ID: 1, Name: "Algorithms"},
				Teacher:      optimizer.TeacherRef{ID: 1, Name: "Prof. Smith"},
				Classroom:    optimizer.ClassroomRef{ID: 1, Name: "Room 101", Floor: 1},
				TimeSlots: []optimizer.TimeSlot{
					{Day: "Monday", Hour: 7},
					{Day: "Monday", Hour: 8},
				},
				Duration: 2,
			},
		},
		Statistics: optimizer.Statistics{
			HardConstraintsSatisfied: true,
			TotalAllocations:         1,
		},
	}

	path := filepath.Join(t.TempDir(), "schedule.json")
	require.NoError(t, ExportResultToJSON(result, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var export ScheduleExport
	require.NoError(t, json.Unmarshal(raw, &export))

	require.Equal(t, 1, export.Summary.PlacedEntries)
	require.Equal(t, 1, export.Summary.RoomsUsed)
	require.True(t, export.Summary.HardSatisfied)

	require.Len(t, export.Week, 5)
	monday := export.Week[0]
	require.Equal(t, "Monday", monday.Day)
	require.Len(t, monday.Hours, 12)
	require.Len(t, monday.Hours[0].Entries, 1)
	require.Len(t, monday.Hours[1].Entries, 1)
	require.Empty(t, monday.Hours[2].Entries)
	require.Empty(t, export.Week[1].Hours[0].Entries)
}
