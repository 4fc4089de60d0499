package models

import (
	"testing"

	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/date"
)

func mustDate(t *testing.T, s string) date.Date {
	t.Helper()
	d, err := date.Parse(s)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return d
}

func TestSortByEndDateDescending(t *testing.T) {
	entries := []WorkHistory{
		{Company: "Oldest", EndDate: mustDate(t, "03/01/2015")},
		{Company: "Newest", EndDate: mustDate(t, "11/30/2023")},
		{Company: "Middle", EndDate: mustDate(t, "06/15/2019")},
	}

	sorted := SortByEndDate(entries)

	want := []string{"Newest", "Middle", "Oldest"}
	for i, company := range want {
		if sorted[i].Company != company {
			t.Errorf("position %d: got %q, want %q", i, sorted[i].Company, company)
		}
	}
}

func TestSortByEndDateStableOnTies(t *testing.T) {
	entries := []WorkHistory{
		{Company: "First", EndDate: mustDate(t, "01/01/2020")},
		{Company: "Second", EndDate: mustDate(t, "06/15/2022")},
		{Company: "Third", EndDate: mustDate(t, "01/01/2020")},
	}

	sorted := SortByEndDate(entries)

	// The two 2020-01-01 entries must keep their source order behind the
	// 2022 entry.
	want := []string{"Second", "First", "Third"}
	for i, company := range want {
		if sorted[i].Company != company {
			t.Errorf("position %d: got %q, want %q", i, sorted[i].Company, company)
		}
	}
}

func TestSortByEndDateLeavesInputAlone(t *testing.T) {
	entries := []WorkHistory{
		{Company: "A", EndDate: mustDate(t, "01/01/2020")},
		{Company: "B", EndDate: mustDate(t, "01/01/2021")},
	}

	_ = SortByEndDate(entries)

	if entries[0].Company != "A" || entries[1].Company != "B" {
		t.Error("input slice was reordered")
	}
}

func TestSortByEndDateEmpty(t *testing.T) {
	if got := SortByEndDate(nil); len(got) != 0 {
		t.Errorf("sorting nil produced %d entries", len(got))
	}
}
