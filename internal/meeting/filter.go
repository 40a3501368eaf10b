package meeting

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"meeting-scheduler/internal/model"
)

type SortKey string

const (
	SortTitle   SortKey = "title"
	SortDate    SortKey = "date"
	SortCreated SortKey = "created"
)

// StatusAll disables the status predicate.
const StatusAll = "all"

// Query configures the derived list view. The zero value matches every
// meeting and sorts by date.
type Query struct {
	Search   string  `form:"search" json:"search"`
	Status   string  `form:"status" json:"status"`
	DateFrom string  `form:"from" json:"dateFrom"`
	DateTo   string  `form:"to" json:"dateTo"`
	SortBy   SortKey `form:"sort" json:"sortBy"`
}

// Apply returns the meetings passing every predicate of q, sorted by
// q.SortBy. The input is never modified; the result holds copies.
func Apply(meetings []model.Meeting, q Query) []model.Meeting {
	fold := cases.Fold()
	needle := fold.String(q.Search)

	out := make([]model.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if !matchesSearch(fold, m, needle) {
			continue
		}
		if q.Status != "" && q.Status != StatusAll && string(m.Status) != q.Status {
			continue
		}
		day := m.Day()
		if q.DateFrom != "" && day < q.DateFrom {
			continue
		}
		if q.DateTo != "" && day > q.DateTo {
			continue
		}
		out = append(out, m.Clone())
	}

	switch q.SortBy {
	case SortTitle:
		col := collate.New(language.Und)
		slices.SortStableFunc(out, func(a, b model.Meeting) int {
			return col.CompareString(a.Title, b.Title)
		})
	case SortDate, "":
		slices.SortStableFunc(out, func(a, b model.Meeting) int {
			if c := a.Date.Compare(b.Date); c != 0 {
				return c
			}
			return strings.Compare(a.StartTime, b.StartTime)
		})
	case SortCreated:
		slices.SortStableFunc(out, func(a, b model.Meeting) int {
			switch {
			case a.Seq > b.Seq:
				return -1
			case a.Seq < b.Seq:
				return 1
			}
			return 0
		})
	}
	return out
}

func matchesSearch(fold cases.Caser, m model.Meeting, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(fold.String(m.Title), needle) ||
		strings.Contains(fold.String(m.Description), needle)
}

type EmptyState string

const (
	EmptyNone       EmptyState = ""
	EmptyCollection EmptyState = "empty-collection"
	EmptyNoMatch    EmptyState = "no-match"
)

// Describe tells a caller which empty-state message to show for a view
// computed over a collection of total meetings.
func Describe(total int, view []model.Meeting) EmptyState {
	switch {
	case len(view) > 0:
		return EmptyNone
	case total == 0:
		return EmptyCollection
	default:
		return EmptyNoMatch
	}
}
