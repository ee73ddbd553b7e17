package optimizer

import "sort"

// TimeSlot is one hour of a placement in human-readable form.
type TimeSlot struct {
	Day  string `json:"day"`
	Hour int    `json:"hour"`
}

// ClassGroupRef, SubjectRef, TeacherRef, ClassroomRef are the trimmed
// entity views embedded in a ScheduleEntry.
type ClassGroupRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Course string `json:"course"`
	Shift  string `json:"shift"`
}

type SubjectRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TeacherRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ClassroomRef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Floor int    `json:"floor"`
}

// ScheduleEntry is one placed allocation in the final result.
type ScheduleEntry struct {
	AllocationID int           `json:"allocation_id"`
	ClassGroup   ClassGroupRef `json:"class_group"`
	Subject      SubjectRef    `json:"subject"`
	Teacher      TeacherRef    `json:"teacher"`
	Classroom    ClassroomRef  `json:"classroom"`
	TimeSlots    []TimeSlot    `json:"time_slots"`
	Duration     int           `json:"duration"`
}

// EmptySpaceStats mirrors the tuple emptySpaceCost returns, labeled for the
// external result.
type EmptySpaceStats struct {
	Total          int     `json:"total"`
	MaxPerDay      int     `json:"max_per_day"`
	AveragePerWeek float64 `json:"average_per_week"`
}

// Statistics summarizes the optimization outcome.
type Statistics struct {
	HardConstraintsSatisfied bool            `json:"hard_constraints_satisfied"`
	HardConstraintsCost      int             `json:"hard_constraints_cost"`
	TotalAllocations         int             `json:"total_allocations"`
	GroupsEmptySpace         EmptySpaceStats `json:"groups_empty_space"`
	TeachersEmptySpace       EmptySpaceStats `json:"teachers_empty_space"`
}

// Result is the full optimization output: optimize(TimetableData).
type Result struct {
	Schedule   []ScheduleEntry `json:"schedule"`
	Statistics Statistics      `json:"statistics"`
}

// project builds the external Result from a finished candidate, sorted by
// allocation id for deterministic output ordering.
func (p *preprocessed) project(c *candidate) Result {
	entries := make([]ScheduleEntry, 0, len(c.filled))
	for _, a := range p.allocationOrder {
		cells, ok := c.filled[a]
		if !ok {
			continue
		}
		alloc := p.data.ClassAllocations[a]
		classroomID := p.columnClassroomID[cells[0].Col]
		room := p.data.Classrooms[classroomID]

		slots := make([]TimeSlot, 0, len(cells))
		for _, rc := range cells {
			slots = append(slots, TimeSlot{
				Day:  weekdayNames[dayOf(rc.Row)],
				Hour: firstHourOfDay + hourOfDay(rc.Row),
			})
		}

		entries = append(entries, ScheduleEntry{
			AllocationID: alloc.ID,
			ClassGroup: ClassGroupRef{
				ID:     alloc.ClassGroup.ID,
				Name:   alloc.ClassGroup.Name,
				Course: alloc.ClassGroup.Course.Name,
				Shift:  alloc.ClassGroup.Shift.Name,
			},
			Subject: SubjectRef{ID: alloc.Subject.ID, Name: alloc.Subject.Name},
			Teacher: TeacherRef{ID: alloc.Teacher.ID, Name: alloc.Teacher.FullName},
			Classroom: ClassroomRef{
				ID:    room.ID,
				Name:  room.Name,
				Floor: room.Floor,
			},
			TimeSlots: slots,
			Duration:  alloc.Duration,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].AllocationID < entries[j].AllocationID })

	// The reported cost is the symmetric-sweep count, which double-counts
	// each conflicting pair; it is zero exactly when hardCost.total is zero.
	hard := p.checkHard(c)
	groupsTotal, groupsMax, groupsAvg := emptySpaceCost(c.groupsEmptySpace)
	teachersTotal, teachersMax, teachersAvg := emptySpaceCost(c.teachersEmptySpace)

	return Result{
		Schedule: entries,
		Statistics: Statistics{
			HardConstraintsSatisfied: hard == 0,
			HardConstraintsCost:      hard,
			TotalAllocations:         len(p.allocationOrder),
			GroupsEmptySpace: EmptySpaceStats{
				Total: groupsTotal, MaxPerDay: groupsMax, AveragePerWeek: groupsAvg,
			},
			TeachersEmptySpace: EmptySpaceStats{
				Total: teachersTotal, MaxPerDay: teachersMax, AveragePerWeek: teachersAvg,
			},
		},
	}
}
