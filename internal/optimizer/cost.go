package optimizer

import (
	"fmt"
	"sort"
	"strings"

	"timetable-optimizer/internal/domain"
)

// mapRowToSchedule returns the schedule id whose weekday and start hour
// match row, or (0, false) if none matches.
func mapRowToSchedule(row int, schedules map[int]domain.Schedule) (int, bool) {
	if len(schedules) == 0 {
		return 0, false
	}
	dayIdx := dayOf(row)
	if dayIdx >= daysPerWeek {
		return 0, false
	}
	weekday := weekdayNames[dayIdx]
	hour := firstHourOfDay + hourOfDay(row)
	prefix := fmt.Sprintf("%02d:", hour)

	ids := make([]int, 0, len(schedules))
	for id := range schedules {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		s := schedules[id]
		if s.Weekday == weekday && strings.HasPrefix(s.StartTime, prefix) {
			return id, true
		}
	}
	return 0, false
}

// hardCostResult is the tuple hardCost returns: the total conflict count and
// its breakdown, plus the per-allocation share used to steer the
// evolutionary phase's mutation targeting.
type hardCostResult struct {
	total          int
	perAllocation  map[int]int
	teacherCost    int
	roomCost       int
	groupCost      int
	teacherAvail   int
}

// hardCost iterates the matrix once, tallying room-type violations, teacher
// availability violations, and same-row teacher/group conflicts. Conflict
// pairs are scanned once (j < k) but credit both sides' perAllocation tally,
// per the symmetric-accounting rule.
func (p *preprocessed) hardCost(c *candidate) hardCostResult {
	perAllocation := make(map[int]int, len(p.allocationOrder))
	for _, idx := range p.allocationOrder {
		perAllocation[idx] = 0
	}

	var roomCost, teacherCost, groupCost, teacherAvail int

	for row := 0; row < totalRows; row++ {
		for col := 0; col < c.numRooms; col++ {
			a := c.matrix[row][col]
			if a < 0 {
				continue
			}
			alloc1 := p.data.ClassAllocations[a]

			if !p.possibleClassrooms[a][col] {
				roomCost++
				perAllocation[a]++
			}

			if ids := p.data.TeacherAvailableSchedules(alloc1.Teacher.ID); ids != nil {
				scheduleID, ok := mapRowToSchedule(row, p.data.Schedules)
				if !ok || !containsInt(ids, scheduleID) {
					teacherAvail++
					perAllocation[a]++
				}
			}

			for k := col + 1; k < c.numRooms; k++ {
				b := c.matrix[row][k]
				if b < 0 {
					continue
				}
				alloc2 := p.data.ClassAllocations[b]

				if alloc1.Teacher.ID == alloc2.Teacher.ID {
					teacherCost++
					perAllocation[a]++
					perAllocation[b]++
				}
				if alloc1.ClassGroup.ID == alloc2.ClassGroup.ID {
					groupCost++
					perAllocation[a]++
					perAllocation[b]++
				}
			}
		}
	}

	total := teacherCost + roomCost + groupCost + teacherAvail
	return hardCostResult{
		total:         total,
		perAllocation: perAllocation,
		teacherCost:   teacherCost,
		roomCost:      roomCost,
		groupCost:     groupCost,
		teacherAvail:  teacherAvail,
	}
}

// checkHard performs the same pair sweep but scans both (j,k) and (k,j),
// returning the raw conflict count. The evolutionary phase uses it as a
// zero/non-zero cross-check against hardCost.total, and project reports it
// as HardConstraintsCost; its magnitude is not comparable to hardCost.total.
func (p *preprocessed) checkHard(c *candidate) int {
	overlaps := 0
	for row := 0; row < totalRows; row++ {
		for col := 0; col < c.numRooms; col++ {
			a := c.matrix[row][col]
			if a < 0 {
				continue
			}
			alloc1 := p.data.ClassAllocations[a]

			if !p.possibleClassrooms[a][col] {
				overlaps++
			}

			if ids := p.data.TeacherAvailableSchedules(alloc1.Teacher.ID); ids != nil {
				scheduleID, ok := mapRowToSchedule(row, p.data.Schedules)
				if !ok || !containsInt(ids, scheduleID) {
					overlaps++
				}
			}

			for k := 0; k < c.numRooms; k++ {
				if k == col {
					continue
				}
				b := c.matrix[row][k]
				if b < 0 {
					continue
				}
				alloc2 := p.data.ClassAllocations[b]
				if alloc1.Teacher.ID == alloc2.Teacher.ID {
					overlaps++
				}
				if alloc1.ClassGroup.ID == alloc2.ClassGroup.ID {
					overlaps++
				}
			}
		}
	}
	return overlaps
}

// emptySpaceCost computes the idle-gap soft cost shared by groups and
// teachers: total gaps, the largest single day's gap across all keys, and
// the per-key weekly average. Each key's sorted occupied rows are scanned as
// pairs (rows[i-1], rows[i]) for i from 1 to len-2, so the final pair of the
// list is deliberately never counted.
func emptySpaceCost(bucket map[int][]int) (total, maxPerDay int, average float64) {
	for _, rowsRef := range bucket {
		rows := append([]int(nil), rowsRef...)
		sort.Ints(rows)

		perDay := [daysPerWeek]int{}
		for i := 1; i < len(rows)-1; i++ {
			a, b := rows[i-1], rows[i]
			diff := b - a
			if dayOf(a) == dayOf(b) && diff > 1 {
				perDay[dayOf(a)] += diff - 1
				total += diff - 1
			}
		}
		for _, v := range perDay {
			if v > maxPerDay {
				maxPerDay = v
			}
		}
	}

	if len(bucket) == 0 {
		return 0, 0, 0
	}
	return total, maxPerDay, float64(total) / float64(len(bucket))
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
