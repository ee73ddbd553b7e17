package optimizer

import "timetable-optimizer/internal/domain"

// buildData assembles a minimal TimetableData from compact test inputs:
// one space type per distinct value of spType, rooms keyed by their id,
// allocations referencing groups/teachers/subjects created on demand.

type testRoom struct {
	id      int
	spType  int
	blocked bool
}

type testAllocation struct {
	id        int
	groupID   int
	teacherID int
	subjectID int
	spType    int
	duration  int
}

func buildData(rooms []testRoom, allocations []testAllocation, teacherSchedules map[int][]int) domain.TimetableData {
	classrooms := make(map[int]domain.Classroom, len(rooms))
	for _, r := range rooms {
		classrooms[r.id] = domain.Classroom{
			ID: r.id, Name: "room", Floor: 1, Capacity: 30,
			Blocked:   r.blocked,
			SpaceType: domain.SpaceType{ID: r.spType, Name: "type"},
		}
	}

	classGroups := make(map[int]domain.ClassGroup)
	teachers := make(map[int]domain.Teacher)
	allocMap := make(map[int]domain.Allocation, len(allocations))

	for _, a := range allocations {
		group, ok := classGroups[a.groupID]
		if !ok {
			group = domain.ClassGroup{ID: a.groupID, Name: "group"}
			classGroups[a.groupID] = group
		}
		teacher, ok := teachers[a.teacherID]
		if !ok {
			teacher = domain.Teacher{ID: a.teacherID, FullName: "teacher"}
			teachers[a.teacherID] = teacher
		}
		subject := domain.Subject{
			ID: a.subjectID, Name: "subject",
			RequiredSpaceType: domain.SpaceType{ID: a.spType, Name: "type"},
		}
		allocMap[a.id] = domain.Allocation{
			ID: a.id, ClassGroup: group, Subject: subject, Teacher: teacher, Duration: a.duration,
		}
	}

	return domain.TimetableData{
		Classrooms:       classrooms,
		Teachers:         teachers,
		ClassGroups:      classGroups,
		Schedules:        map[int]domain.Schedule{},
		ClassAllocations: allocMap,
		TeacherSchedules: teacherSchedules,
	}
}
