// Package template expands the configured subtask table into a project tree
// anchored on a single due date.
package template

import (
	"time"

	"github.com/alexanderramin/orgplant/internal/config"
	"github.com/alexanderramin/orgplant/internal/domain"
	"github.com/alexanderramin/orgplant/internal/schedule"
)

// Request carries the caller-supplied inputs for one expansion. Blank
// Category falls back to Name, non-positive Level to 1, blank Todo to the
// configured default todo state, nil Weekends to the configured weekend
// allowance.
type Request struct {
	Name     string
	Category string
	Due      time.Time
	Level    int
	Todo     string
	Weekends *bool
}

// Build expands settings into a fully formed project tree: the project root
// headline, its CATEGORY property, and one subtask per table entry in
// configured order. Build reads no clock and touches no files, so identical
// inputs yield identical trees. The due date arrives already parsed; input
// validation belongs to the caller.
func Build(settings config.Settings, req Request) *domain.ProjectTree {
	category := domain.CoalesceStr(req.Category, req.Name)
	subtaskTodo := domain.CoalesceStr(req.Todo, settings.DefaultTodo)
	allowWeekends := domain.BoolFromPtrWithDefault(settings.AllowWeekends, req.Weekends)
	level := req.Level
	if level < 1 {
		level = 1
	}

	root := domain.HeadlineRecord{
		Title: req.Name,
		Level: level,
		Todo:  settings.MasterTodo.ProjectTodo(subtaskTodo),
	}
	setPlanningDate(&root, req.Due, settings.UseDeadline)

	subtasks := make([]domain.HeadlineRecord, 0, len(settings.Subtasks))
	for _, st := range settings.Subtasks {
		h := domain.HeadlineRecord{
			Title: st.Name,
			Level: level + 1,
			Todo:  subtaskTodo,
		}
		setPlanningDate(&h, schedule.Resolve(req.Due, st.OffsetDays, allowWeekends), settings.UseDeadline)
		subtasks = append(subtasks, h)
	}

	return &domain.ProjectTree{
		Root:       root,
		Properties: []domain.Property{{Key: "CATEGORY", Value: category}},
		Subtasks:   subtasks,
	}
}

// setPlanningDate assigns d to exactly one date field per the global
// deadline policy, never both.
func setPlanningDate(h *domain.HeadlineRecord, d time.Time, useDeadline bool) {
	if useDeadline {
		h.Deadline = &d
	} else {
		h.Scheduled = &d
	}
}
