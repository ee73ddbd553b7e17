// Package exporter writes an optimization result to a JSON file, grouped
// per weekday for human inspection alongside the flat schedule list.
package exporter

import (
	"encoding/json"
	"os"
	"time"

	"timetable-optimizer/internal/optimizer"
)

// ScheduleExport es la estructura del JSON exportado.
type ScheduleExport struct {
	GeneratedAt string                    `json:"generated_at"`
	Summary     ScheduleSummary           `json:"summary"`
	Week        []DaySchedule             `json:"week"`
	Schedule    []optimizer.ScheduleEntry `json:"schedule"`
	Statistics  optimizer.Statistics      `json:"statistics"`
}

// ScheduleSummary contiene estadísticas del horario.
type ScheduleSummary struct {
	TotalAllocations int  `json:"total_allocations"`
	PlacedEntries    int  `json:"placed_entries"`
	RoomsUsed        int  `json:"rooms_used"`
	HardSatisfied    bool `json:"hard_constraints_satisfied"`
}

// DaySchedule representa un día de la semana.
type DaySchedule struct {
	Day   string      `json:"day"`
	Hours []HourBlock `json:"hours"`
}

// HourBlock representa un bloque horario de una hora.
type HourBlock struct {
	Hour    int                       `json:"hour"`
	Time    string                    `json:"time"`
	Entries []optimizer.ScheduleEntry `json:"entries"`
}

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Hourly blocks of the weekly grid, 07:00 through 19:00.
var timeSlots = []string{
	"07:00-08:00",
	"08:00-09:00",
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"12:00-13:00",
	"13:00-14:00",
	"14:00-15:00",
	"15:00-16:00",
	"16:00-17:00",
	"17:00-18:00",
	"18:00-19:00",
}

// ExportResultToJSON exporta el resultado completo a un archivo JSON.
func ExportResultToJSON(result *optimizer.Result, filename string) error {
	export := ScheduleExport{
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		Summary:     calculateSummary(result),
		Week:        buildWeekSchedule(result),
		Schedule:    result.Schedule,
		Statistics:  result.Statistics,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

func calculateSummary(result *optimizer.Result) ScheduleSummary {
	rooms := make(map[int]bool)
	for _, e := range result.Schedule {
		rooms[e.Classroom.ID] = true
	}

	return ScheduleSummary{
		TotalAllocations: result.Statistics.TotalAllocations,
		PlacedEntries:    len(result.Schedule),
		RoomsUsed:        len(rooms),
		HardSatisfied:    result.Statistics.HardConstraintsSatisfied,
	}
}

func buildWeekSchedule(result *optimizer.Result) []DaySchedule {
	week := make([]DaySchedule, len(dayNames))

	for d := range dayNames {
		week[d] = DaySchedule{
			Day:   dayNames[d],
			Hours: make([]HourBlock, len(timeSlots)),
		}
		for s := range timeSlots {
			week[d].Hours[s] = HourBlock{
				Hour:    7 + s,
				Time:    timeSlots[s],
				Entries: []optimizer.ScheduleEntry{},
			}
		}
	}

	for _, entry := range result.Schedule {
		for _, slot := range entry.TimeSlots {
			d := dayIndex(slot.Day)
			if d < 0 || slot.Hour < 7 || slot.Hour > 18 {
				continue
			}
			block := &week[d].Hours[slot.Hour-7]
			block.Entries = append(block.Entries, entry)
		}
	}

	return week
}

func dayIndex(day string) int {
	for i, name := range dayNames {
		if name == day {
			return i
		}
	}
	return -1
}
