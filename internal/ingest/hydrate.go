package ingest

import (
	"encoding/json"
	"fmt"

	"timetable-optimizer/internal/domain"
	"timetable-optimizer/pkg/apperrors"
)

// FromPayload decodes a JSON request body into a TimetableDataWire and
// hydrates it in one step. cmd/optimizer's run subcommand uses it; the HTTP
// handler decodes its request body itself and calls Hydrate directly.
func FromPayload(raw []byte) (domain.TimetableData, error) {
	var wire TimetableDataWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return domain.TimetableData{}, apperrors.WrapDataError(err, "malformed timetable payload")
	}
	return Hydrate(wire)
}

// Hydrate resolves every foreign-key field in raw, and every key of
// teacher_schedules and subject_teachers, into the fully cross-linked
// domain.TimetableData the optimizer operates on. Any of those naming an
// unknown id is reported as a DataError; no partial result is returned. The
// id lists held by teachers, teacher_schedules and subject_teachers are
// copied as given, without lookup.
func Hydrate(raw TimetableDataWire) (domain.TimetableData, error) {
	spaceTypes := make(map[int]domain.SpaceType, len(raw.SpaceTypes))
	for _, st := range raw.SpaceTypes {
		spaceTypes[st.ID] = domain.SpaceType{ID: st.ID, Name: st.Name}
	}

	courseTypes := make(map[int]domain.CourseType, len(raw.CourseTypes))
	for _, ct := range raw.CourseTypes {
		courseTypes[ct.ID] = domain.CourseType{ID: ct.ID, Name: ct.Name}
	}

	shifts := make(map[int]domain.Shift, len(raw.Shifts))
	for _, sh := range raw.Shifts {
		shifts[sh.ID] = domain.Shift{ID: sh.ID, Name: sh.Name}
	}

	schedules := make(map[int]domain.Schedule, len(raw.Schedules))
	for _, s := range raw.Schedules {
		schedules[s.ID] = domain.Schedule{ID: s.ID, Weekday: s.Weekday, StartTime: s.StartTime, EndTime: s.EndTime}
	}

	courses := make(map[int]domain.Course, len(raw.Courses))
	for _, c := range raw.Courses {
		ct, ok := courseTypes[c.CourseTypeID]
		if !ok {
			return domain.TimetableData{}, dataErrf("course %d references unknown course_type %d", c.ID, c.CourseTypeID)
		}
		courses[c.ID] = domain.Course{ID: c.ID, Name: c.Name, CourseType: ct}
	}

	classrooms := make(map[int]domain.Classroom, len(raw.Classrooms))
	for _, cr := range raw.Classrooms {
		st, ok := spaceTypes[cr.SpaceTypeID]
		if !ok {
			return domain.TimetableData{}, dataErrf("classroom %d references unknown space_type %d", cr.ID, cr.SpaceTypeID)
		}
		classrooms[cr.ID] = domain.Classroom{
			ID: cr.ID, Name: cr.Name, Floor: cr.Floor, Capacity: cr.Capacity,
			Blocked: cr.Blocked, SpaceType: st,
		}
	}

	subjects := make(map[int]domain.Subject, len(raw.Subjects))
	for _, sub := range raw.Subjects {
		st, ok := spaceTypes[sub.RequiredSpaceTypeID]
		if !ok {
			return domain.TimetableData{}, dataErrf("subject %d references unknown required_space_type %d", sub.ID, sub.RequiredSpaceTypeID)
		}
		course, ok := courses[sub.CourseID]
		if !ok {
			return domain.TimetableData{}, dataErrf("subject %d references unknown course %d", sub.ID, sub.CourseID)
		}
		subjects[sub.ID] = domain.Subject{ID: sub.ID, Name: sub.Name, RequiredSpaceType: st, Course: course}
	}

	teachers := make(map[int]domain.Teacher, len(raw.Teachers))
	for _, t := range raw.Teachers {
		teachers[t.ID] = domain.Teacher{
			ID: t.ID, FullName: t.FullName,
			AvailableSchedules: append([]int(nil), t.AvailableScheduleIDs...),
			TeachableSubjects:  append([]int(nil), t.TeachableSubjectIDs...),
		}
	}

	classGroups := make(map[int]domain.ClassGroup, len(raw.ClassGroups))
	for _, g := range raw.ClassGroups {
		course, ok := courses[g.CourseID]
		if !ok {
			return domain.TimetableData{}, dataErrf("class group %d references unknown course %d", g.ID, g.CourseID)
		}
		shift, ok := shifts[g.ShiftID]
		if !ok {
			return domain.TimetableData{}, dataErrf("class group %d references unknown shift %d", g.ID, g.ShiftID)
		}
		classGroups[g.ID] = domain.ClassGroup{
			ID: g.ID, Name: g.Name, Semester: g.Semester, Module: g.Module,
			StudentCount: g.StudentCount, Course: course, Shift: shift,
		}
	}

	allocations := make(map[int]domain.Allocation, len(raw.Allocations))
	for idx, a := range raw.Allocations {
		group, ok := classGroups[a.ClassGroupID]
		if !ok {
			return domain.TimetableData{}, dataErrf("allocation %d references unknown class_group %d", a.ID, a.ClassGroupID)
		}
		subject, ok := subjects[a.SubjectID]
		if !ok {
			return domain.TimetableData{}, dataErrf("allocation %d references unknown subject %d", a.ID, a.SubjectID)
		}
		teacher, ok := teachers[a.TeacherID]
		if !ok {
			return domain.TimetableData{}, dataErrf("allocation %d references unknown teacher %d", a.ID, a.TeacherID)
		}
		allocations[idx] = domain.Allocation{
			ID: a.ID, ClassGroup: group, Subject: subject, Teacher: teacher, Duration: a.Duration,
		}
	}

	teacherSchedules := make(map[int][]int, len(raw.TeacherSchedules))
	for teacherID, ids := range raw.TeacherSchedules {
		if _, ok := teachers[teacherID]; !ok {
			return domain.TimetableData{}, dataErrf("teacher_schedules references unknown teacher %d", teacherID)
		}
		teacherSchedules[teacherID] = append([]int(nil), ids...)
	}

	subjectTeachers := make(map[int][]int, len(raw.SubjectTeachers))
	for subjectID, ids := range raw.SubjectTeachers {
		if _, ok := subjects[subjectID]; !ok {
			return domain.TimetableData{}, dataErrf("subject_teachers references unknown subject %d", subjectID)
		}
		subjectTeachers[subjectID] = append([]int(nil), ids...)
	}

	return domain.TimetableData{
		Classrooms:       classrooms,
		Teachers:         teachers,
		ClassGroups:      classGroups,
		Schedules:        schedules,
		ClassAllocations: allocations,
		TeacherSchedules: teacherSchedules,
		SubjectTeachers:  subjectTeachers,
	}, nil
}

func dataErrf(format string, args ...any) *apperrors.DataError {
	return apperrors.NewDataError(fmt.Sprintf(format, args...))
}
