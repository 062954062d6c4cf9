package org

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/orgplant/internal/domain"
)

func deadlineHeadline(level int, todo, title string, d time.Time) domain.HeadlineRecord {
	return domain.HeadlineRecord{Title: title, Level: level, Todo: todo, Deadline: &d}
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, "<2024-06-14 Fri>", Timestamp(date(2024, time.June, 14)))
	assert.Equal(t, "<2024-06-17 Mon>", Timestamp(date(2024, time.June, 17)))
}

func TestRenderLines_FullTree(t *testing.T) {
	tree := &domain.ProjectTree{
		Root:       deadlineHeadline(1, "TODO", "Quarterly report", date(2024, time.June, 14)),
		Properties: []domain.Property{{Key: "CATEGORY", Value: "Quarterly report"}},
		Subtasks: []domain.HeadlineRecord{
			deadlineHeadline(2, "TODO", "Outline", date(2024, time.June, 7)),
			deadlineHeadline(2, "TODO", "Deliver", date(2024, time.June, 14)),
		},
	}

	want := []string{
		"* TODO Quarterly report",
		"DEADLINE: <2024-06-14 Fri>",
		":PROPERTIES:",
		":CATEGORY: Quarterly report",
		":END:",
		"** TODO Outline",
		"DEADLINE: <2024-06-07 Fri>",
		"** TODO Deliver",
		"DEADLINE: <2024-06-14 Fri>",
	}
	assert.Equal(t, want, RenderLines(tree))
	assert.Equal(t, strings.Join(want, "\n")+"\n", Render(tree))
}

func TestRenderLines_ScheduledKeyword(t *testing.T) {
	d := date(2024, time.June, 7)
	tree := &domain.ProjectTree{
		Root: domain.HeadlineRecord{Title: "Report", Level: 1, Scheduled: &d},
	}

	lines := RenderLines(tree)
	require.Len(t, lines, 2)
	assert.Equal(t, "* Report", lines[0])
	assert.Equal(t, "SCHEDULED: <2024-06-07 Fri>", lines[1])
}

func TestRenderLines_NoTodoNoDrawer(t *testing.T) {
	tree := &domain.ProjectTree{
		Root: deadlineHeadline(2, "", "Report", date(2024, time.June, 14)),
		Subtasks: []domain.HeadlineRecord{
			deadlineHeadline(3, "NEXT", "Deliver", date(2024, time.June, 14)),
		},
	}

	lines := RenderLines(tree)
	assert.Equal(t, []string{
		"** Report",
		"DEADLINE: <2024-06-14 Fri>",
		"*** NEXT Deliver",
		"DEADLINE: <2024-06-14 Fri>",
	}, lines)
}

func TestRenderLines_UndatedHeadline(t *testing.T) {
	tree := &domain.ProjectTree{
		Root: domain.HeadlineRecord{Title: "Someday", Level: 1, Todo: "TODO"},
	}

	assert.Equal(t, []string{"* TODO Someday"}, RenderLines(tree))
}
