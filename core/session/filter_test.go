package session

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zulkitech/traindesk/core"
)

func calendar() []Session {
	return []Session{
		{ID: "1", CourseTitle: "Welding Basics", Date: core.NewDate(2025, time.March, 9), Time: "09:00 AM - 05:00 PM"},
		{ID: "2", CourseTitle: "Forklift Safety", Date: core.NewDate(2025, time.March, 10), Time: "09:00 AM - 01:00 PM"},
		{ID: "3", CourseTitle: "Welding Basics", Date: core.NewDate(2025, time.April, 2), Time: "09:00 AM - 05:00 PM"},
	}
}

func TestMatchingCourse(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantIDs []string
	}{
		{name: "exact match", title: "Welding Basics", wantIDs: []string{"1", "3"}},
		{name: "single match", title: "Forklift Safety", wantIDs: []string{"2"}},
		{name: "no match", title: "Scaffolding", wantIDs: []string{}},
		{name: "empty title matches nothing", title: "", wantIDs: []string{}},
		{name: "case sensitive", title: "welding basics", wantIDs: []string{}},
		{name: "no partial match", title: "Welding", wantIDs: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIDs := make([]string, 0)
			for ses := range MatchingCourse(calendar(), tt.title) {
				gotIDs = append(gotIDs, ses.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestMatchingCourse_restartable(t *testing.T) {
	seq := MatchingCourse(calendar(), "Welding Basics")

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestMatchingCourse_preservesOrder(t *testing.T) {
	got := slices.Collect(MatchingCourse(calendar(), "Welding Basics"))
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}
