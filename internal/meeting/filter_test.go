package meeting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"meeting-scheduler/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func titles(ms []model.Meeting) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Title
	}
	return out
}

func sample() []model.Meeting {
	return []model.Meeting{
		{ID: "a", Seq: 1, Title: "Team meeting", Description: "Monthly developer sync", Date: day("2025-06-05"), StartTime: "10:00", EndTime: "11:30", Status: model.StatusScheduled, Participants: []string{"jan@example.com"}},
		{ID: "b", Seq: 2, Title: "Project demo", Description: "Progress of the React project", Date: day("2025-06-07"), StartTime: "14:00", EndTime: "15:00", Status: model.StatusScheduled},
		{ID: "c", Seq: 10, Title: "Budget review", Description: "Q3 numbers", Date: day("2025-06-01"), StartTime: "09:00", EndTime: "09:30", Status: model.StatusCanceled},
	}
}

func TestApplyIdentity(t *testing.T) {
	in := sample()
	out := Apply(in, Query{Status: StatusAll, SortBy: SortCreated})
	assert.ElementsMatch(t, []string{"a", "b", "c"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

func TestApplySearch(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"Budget review", "Team meeting", "Project demo"}},
		{"PROJECT", []string{"Project demo"}},
		{"developer", []string{"Team meeting"}},
		{"q3", []string{"Budget review"}},
		{"nothing", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			out := Apply(sample(), Query{Search: tt.search})
			assert.Equal(t, tt.want, titles(out))
		})
	}
}

func TestApplySearchFoldsUnicode(t *testing.T) {
	ms := []model.Meeting{{Title: "Spotkanie ZESPOŁU", Date: day("2025-06-05")}}
	assert.Len(t, Apply(ms, Query{Search: "zespołu"}), 1)
}

func TestApplyStatus(t *testing.T) {
	assert.Equal(t, []string{"Budget review"}, titles(Apply(sample(), Query{Status: "canceled"})))
	assert.Len(t, Apply(sample(), Query{Status: "scheduled"}), 2)
	assert.Len(t, Apply(sample(), Query{Status: "all"}), 3)
}

func TestApplyDateRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{"inclusive both", "2025-06-05", "2025-06-07", []string{"Team meeting", "Project demo"}},
		{"from only", "2025-06-06", "", []string{"Project demo"}},
		{"to only", "", "2025-06-01", []string{"Budget review"}},
		{"empty window", "2025-07-01", "2025-07-31", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Apply(sample(), Query{DateFrom: tt.from, DateTo: tt.to})
			assert.Equal(t, tt.want, titles(out))
		})
	}
}

func TestApplyConjunction(t *testing.T) {
	q := Query{Search: "e", Status: "scheduled", DateFrom: "2025-06-06"}
	out := Apply(sample(), q)
	for _, m := range out {
		assert.Equal(t, model.StatusScheduled, m.Status)
		assert.GreaterOrEqual(t, m.Day(), "2025-06-06")
	}
	assert.Equal(t, []string{"Project demo"}, titles(out))
}

func TestApplySortKeys(t *testing.T) {
	ms := []model.Meeting{
		{Seq: 1, Title: "Z-meet", Date: day("2025-06-05")},
		{Seq: 2, Title: "A-meet", Date: day("2025-06-07")},
	}
	assert.Equal(t, []string{"Z-meet", "A-meet"}, titles(Apply(ms, Query{SortBy: SortDate})))
	assert.Equal(t, []string{"A-meet", "Z-meet"}, titles(Apply(ms, Query{SortBy: SortTitle})))
	assert.Equal(t, []string{"A-meet", "Z-meet"}, titles(Apply(ms, Query{SortBy: SortCreated})))
}

func TestApplyCreatedIsNumeric(t *testing.T) {
	// "10" < "9" as strings; the sequence must compare as numbers
	ms := []model.Meeting{
		{Seq: 9, Title: "nine", Date: day("2025-06-05")},
		{Seq: 10, Title: "ten", Date: day("2025-06-05")},
	}
	assert.Equal(t, []string{"ten", "nine"}, titles(Apply(ms, Query{SortBy: SortCreated})))
}

func TestApplyTitleSortIdempotent(t *testing.T) {
	once := Apply(sample(), Query{SortBy: SortTitle})
	twice := Apply(once, Query{SortBy: SortTitle})
	assert.Equal(t, once, twice)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := sample()
	before := sample()
	out := Apply(in, Query{SortBy: SortTitle})
	out[0].Title = "changed"
	out[len(out)-1].Participants = append(out[len(out)-1].Participants, "x@example.com")
	for i := range out {
		if out[i].ID == "a" && len(out[i].Participants) > 0 {
			out[i].Participants[0] = "changed@example.com"
		}
	}
	assert.Equal(t, before, in)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, EmptyCollection, Describe(0, nil))
	assert.Equal(t, EmptyNoMatch, Describe(3, Apply(sample(), Query{Search: "nothing"})))
	assert.Equal(t, EmptyNone, Describe(3, sample()))
}
