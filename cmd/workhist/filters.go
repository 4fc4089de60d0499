package main

import (
	"fmt"
	"strings"

	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/date"
	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/models"
	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/service"
)

// filters narrows which entries inspect shows. Zero values mean the
// dimension is unconstrained.
type filters struct {
	company string
	from    string
	to      string
}

func (f *filters) toFilterFunc() (service.FilterFunc, error) {
	var from, to date.Date
	var err error

	if f.from != "" {
		if from, err = date.Parse(f.from); err != nil {
			return nil, fmt.Errorf("invalid --from: %w", err)
		}
	}
	if f.to != "" {
		if to, err = date.Parse(f.to); err != nil {
			return nil, fmt.Errorf("invalid --to: %w", err)
		}
	}

	return func(e models.WorkHistory) bool {
		if f.company != "" && !strings.Contains(strings.ToLower(e.Company), strings.ToLower(f.company)) {
			return false
		}
		if !from.IsZero() && e.EndDate.Before(from) {
			return false
		}
		if !to.IsZero() && e.EndDate.After(to) {
			return false
		}
		return true
	}, nil
}
