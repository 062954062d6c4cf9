package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDue = time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)

func TestHeadlineValidate_LevelTooLow(t *testing.T) {
	h := &HeadlineRecord{Title: "Ship it", Level: 0, Deadline: &testDue}
	err := h.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level")
}

func TestHeadlineValidate_BothDatesSet(t *testing.T) {
	h := &HeadlineRecord{Title: "Ship it", Level: 1, Scheduled: &testDue, Deadline: &testDue}
	err := h.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestHeadlineValidate_EmptyTitleAllowed(t *testing.T) {
	h := &HeadlineRecord{Title: "", Level: 1, Deadline: &testDue}
	assert.NoError(t, h.Validate())
}

func TestHeadlinePlanningDate(t *testing.T) {
	cases := []struct {
		name string
		h    HeadlineRecord
		want *time.Time
	}{
		{"deadline", HeadlineRecord{Level: 1, Deadline: &testDue}, &testDue},
		{"scheduled", HeadlineRecord{Level: 1, Scheduled: &testDue}, &testDue},
		{"undated", HeadlineRecord{Level: 1}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.h.PlanningDate())
			assert.Equal(t, tc.want != nil, tc.h.Dated())
		})
	}
}

func TestTreeValidate_LevelMismatch(t *testing.T) {
	tree := &ProjectTree{
		Root: HeadlineRecord{Title: "Thesis", Level: 2, Deadline: &testDue},
		Subtasks: []HeadlineRecord{
			{Title: "Outline", Level: 3, Deadline: &testDue},
			{Title: "Draft", Level: 2, Deadline: &testDue},
		},
	}
	err := tree.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subtask[1]")
	assert.Contains(t, err.Error(), "want 3")
}

func TestTreeValidate_OK(t *testing.T) {
	tree := &ProjectTree{
		Root:       HeadlineRecord{Title: "Thesis", Level: 1, Deadline: &testDue},
		Properties: []Property{{Key: "CATEGORY", Value: "thesis"}},
		Subtasks: []HeadlineRecord{
			{Title: "Outline", Level: 2, Todo: "TODO", Deadline: &testDue},
		},
	}
	require.NoError(t, tree.Validate())
	assert.Equal(t, "thesis", tree.Category())
}

func TestTreeCategory_Missing(t *testing.T) {
	tree := &ProjectTree{Root: HeadlineRecord{Title: "Thesis", Level: 1}}
	assert.Equal(t, "", tree.Category())
}
