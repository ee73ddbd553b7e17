// Package ingest hydrates the wire representation of a timetable request
// into the immutable domain.TimetableData the optimizer consumes. No
// partial hydration is ever returned: any dangling foreign-key field is
// reported as a DataError before the optimizer ever sees the data (see
// Hydrate for which ids are looked up).
package ingest

// SpaceTypeWire, CourseTypeWire, ShiftWire, ScheduleWire are id-keyed leaf
// entities with no foreign keys of their own.
type SpaceTypeWire struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CourseTypeWire struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ShiftWire struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ScheduleWire struct {
	ID        int    `json:"id"`
	Weekday   string `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type CourseWire struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	CourseTypeID int    `json:"course_type_id"`
}

type ClassroomWire struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Floor       int    `json:"floor"`
	Capacity    int    `json:"capacity"`
	Blocked     bool   `json:"blocked"`
	SpaceTypeID int    `json:"space_type_id"`
}

type SubjectWire struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	RequiredSpaceTypeID int    `json:"required_space_type_id"`
	CourseID            int    `json:"course_id"`
}

type TeacherWire struct {
	ID                   int    `json:"id"`
	FullName             string `json:"full_name"`
	AvailableScheduleIDs []int  `json:"available_schedule_ids"`
	TeachableSubjectIDs  []int  `json:"teachable_subject_ids"`
}

type ClassGroupWire struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Semester     string `json:"semester"`
	Module       string `json:"module"`
	StudentCount int    `json:"student_count"`
	CourseID     int    `json:"course_id"`
	ShiftID      int    `json:"shift_id"`
}

type AllocationWire struct {
	ID           int `json:"id"`
	ClassGroupID int `json:"class_group_id"`
	SubjectID    int `json:"subject_id"`
	TeacherID    int `json:"teacher_id"`
	Duration     int `json:"duration"`
}

// TimetableDataWire is the full request payload: the flat, id-referencing
// shape the HTTP surface accepts and the optimizer's domain types resolve
// into their fully hydrated, cross-linked form.
type TimetableDataWire struct {
	SpaceTypes  []SpaceTypeWire  `json:"space_types"`
	CourseTypes []CourseTypeWire `json:"course_types"`
	Shifts      []ShiftWire      `json:"shifts"`
	Schedules   []ScheduleWire   `json:"schedules"`
	Courses     []CourseWire     `json:"courses"`
	Classrooms  []ClassroomWire  `json:"classrooms"`
	Subjects    []SubjectWire    `json:"subjects"`
	Teachers    []TeacherWire    `json:"teachers"`
	ClassGroups []ClassGroupWire `json:"class_groups"`
	Allocations []AllocationWire `json:"allocations"`

	// TeacherSchedules and SubjectTeachers are the auxiliary relations;
	// absent or explicitly empty entries both mean "no restriction" for
	// TeacherSchedules (domain.TimetableData.TeacherAvailableSchedules
	// reproduces this).
	TeacherSchedules map[int][]int `json:"teacher_schedules"`
	SubjectTeachers  map[int][]int `json:"subject_teachers"`
}
