// Package models holds the domain records shared by the parsing, sorting,
// and rendering stages.
package models

import (
	"sort"

	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/date"
)

// WorkHistory is one decoded employment record. Entries are plain values:
// once a row has been decoded the pipeline never mutates its fields, it
// only changes the order entries are visited in.
type WorkHistory struct {
	Company          string
	Position         string
	StartDate        date.Date
	EndDate          date.Date
	Location         string
	Responsibilities string
}

// SortByEndDate returns a new slice with the entries ordered by end date,
// most recent first. The sort is stable, so entries sharing an end date
// keep their source order. The input slice is left untouched.
func SortByEndDate(entries []WorkHistory) []WorkHistory {
	sorted := make([]WorkHistory, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EndDate.After(sorted[j].EndDate)
	})
	return sorted
}
