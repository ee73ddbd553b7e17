package optimizer

import (
	"sort"

	"timetable-optimizer/internal/domain"
	"timetable-optimizer/pkg/apperrors"
)

// preprocessed bundles the data derived from a TimetableData once, ahead of
// any placement: the column <-> classroom bijection, and each allocation's
// admissible columns.
type preprocessed struct {
	data domain.TimetableData

	// allocationOrder lists allocation indices in ascending order. The
	// Python source iterates class_allocations as an insertion-ordered
	// dict; this slice reproduces that ordering deterministically.
	allocationOrder []int

	columnClassroomID []int       // column -> classroom id, ascending by id
	classroomColumn   map[int]int // classroom id -> column

	possibleClassrooms map[int]map[int]bool // allocation index -> set of columns
}

// preprocess computes the column enumeration and, for every allocation, the
// set of admissible columns (matching required space type, not blocked).
// Durations longer than a 12-slot day are not rejected here; such
// allocations simply never fit any block and stay unplaced.
func preprocess(data domain.TimetableData) (*preprocessed, error) {
	classroomIDs := make([]int, 0, len(data.Classrooms))
	for id := range data.Classrooms {
		classroomIDs = append(classroomIDs, id)
	}
	sort.Ints(classroomIDs)

	classroomColumn := make(map[int]int, len(classroomIDs))
	for col, id := range classroomIDs {
		classroomColumn[id] = col
	}

	allocationOrder := make([]int, 0, len(data.ClassAllocations))
	for idx := range data.ClassAllocations {
		allocationOrder = append(allocationOrder, idx)
	}
	sort.Ints(allocationOrder)

	p := &preprocessed{
		data:               data,
		allocationOrder:    allocationOrder,
		columnClassroomID:  classroomIDs,
		classroomColumn:    classroomColumn,
		possibleClassrooms: make(map[int]map[int]bool, len(allocationOrder)),
	}

	for _, idx := range allocationOrder {
		alloc := data.ClassAllocations[idx]
		if alloc.Duration <= 0 {
			return nil, apperrors.NewDataError("allocation has non-positive duration")
		}

		cols := make(map[int]bool)
		required := alloc.Subject.RequiredSpaceType.ID
		for _, id := range classroomIDs {
			room := data.Classrooms[id]
			if room.Blocked {
				continue
			}
			if room.SpaceType.ID != required {
				continue
			}
			cols[classroomColumn[id]] = true
		}
		p.possibleClassrooms[idx] = cols
	}

	return p, nil
}

func (p *preprocessed) numRooms() int { return len(p.columnClassroomID) }
