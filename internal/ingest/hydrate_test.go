package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func baseWire() TimetableDataWire {
	return TimetableDataWire{
		SpaceTypes:  []SpaceTypeWire{{ID: 1, Name: "Lab"}},
		CourseTypes: []CourseTypeWire{{ID: 1, Name: "Bachelor"}},
		Shifts:      []ShiftWire{{ID: 1, Name: "Morning"}},
		Courses:     []CourseWire{{ID: 1, Name: "CS", CourseTypeID: 1}},
		Classrooms:  []ClassroomWire{{ID: 1, Name: "Room 101", SpaceTypeID: 1}},
		Subjects:    []SubjectWire{{ID: 1, Name: "Algorithms", RequiredSpaceTypeID: 1, CourseID: 1}},
		Teachers:    []TeacherWire{{ID: 1, FullName: "Prof. Smith"}},
		ClassGroups: []ClassGroupWire{{ID: 1, Name: "CS-1", CourseID: 1, ShiftID: 1}},
		Allocations: []AllocationWire{{ID: 1, ClassGroupID: 1, SubjectID: 1, TeacherID: 1, Duration: 1}},
	}
}

func TestHydrateResolvesValidPayload(t *testing.T) {
	data, err := Hydrate(baseWire())
	require.NoError(t, err)
	require.Len(t, data.ClassAllocations, 1)
	require.Equal(t, "Algorithms", data.ClassAllocations[0].Subject.Name)
	require.Equal(t, "Prof. Smith", data.ClassAllocations[0].Teacher.FullName)
}

func TestHydrateRejectsUnknownCourseOnSubject(t *testing.T) {
	wire := baseWire()
	wire.Subjects[0].CourseID = 999
	_, err := Hydrate(wire)
	require.Error(t, err)
}

func TestHydrateRejectsUnknownTeacherOnAllocation(t *testing.T) {
	wire := baseWire()
	wire.Allocations[0].TeacherID = 999
	_, err := Hydrate(wire)
	require.Error(t, err)
}

func TestHydrateRejectsUnknownSpaceTypeOnClassroom(t *testing.T) {
	wire := baseWire()
	wire.Classrooms[0].SpaceTypeID = 999
	_, err := Hydrate(wire)
	require.Error(t, err)
}

func TestFromPayloadRejectsMalformedJSON(t *testing.T) {
	_, err := FromPayload([]byte("{not json"))
	require.Error(t, err)
}
