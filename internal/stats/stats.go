// Package stats derives reporting views from the current collections.
// Everything here is a pure function recomputed on every read; at personal
// scale there is nothing worth caching.
package stats

import (
	"sort"

	"github.com/ktausif7709-art/Time-tracker/internal/model"
)

// ProjectTotal is the summed hours for one project.
type ProjectTotal struct {
	ProjectName string
	Hours       float64
	Color       string
}

// DailyTotal is the summed hours for one calendar date.
type DailyTotal struct {
	Date  string
	Hours float64
}

// PerProjectTotals sums entry hours per project, in project collection
// order. Projects with no matching entries are excluded. Entries whose
// project reference dangles contribute to no bucket.
func PerProjectTotals(entries []model.TimeEntry, projects []model.Project) []ProjectTotal {
	var totals []ProjectTotal
	for _, p := range projects {
		var hours float64
		for _, e := range entries {
			if e.ProjectID == p.ID {
				hours += e.Hours
			}
		}
		if hours > 0 {
			totals = append(totals, ProjectTotal{ProjectName: p.Name, Hours: hours, Color: p.Color})
		}
	}
	return totals
}

// TrailingDailyTotals returns per-date totals for the most recent window
// distinct dates that have at least one entry, sorted ascending. Dates with
// no entries are not zero-filled.
func TrailingDailyTotals(entries []model.TimeEntry, window int) []DailyTotal {
	byDate := map[string]float64{}
	for _, e := range entries {
		byDate[e.Date] += e.Hours
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	if window > 0 && len(dates) > window {
		dates = dates[len(dates)-window:]
	}

	totals := make([]DailyTotal, len(dates))
	for i, d := range dates {
		totals[i] = DailyTotal{Date: d, Hours: byDate[d]}
	}
	return totals
}

// TotalLoggedHours sums all entry hours regardless of project or date.
func TotalLoggedHours(entries []model.TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total
}
