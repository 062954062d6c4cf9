package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/orgplant/internal/config"
	"github.com/alexanderramin/orgplant/internal/domain"
)

// Planting options
type PlantingOption func(*domain.Planting)

func WithFile(path string) PlantingOption {
	return func(p *domain.Planting) {
		p.File = path
	}
}

func WithDueDate(d time.Time) PlantingOption {
	return func(p *domain.Planting) {
		p.DueDate = d
	}
}

func WithCreatedAt(t time.Time) PlantingOption {
	return func(p *domain.Planting) {
		p.CreatedAt = t
	}
}

func WithSubtaskCount(n int) PlantingOption {
	return func(p *domain.Planting) {
		p.SubtaskCount = n
	}
}

func NewTestPlanting(name string, opts ...PlantingOption) *domain.Planting {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Planting{
		ID:           uuid.New().String(),
		Name:         name,
		Category:     name,
		File:         "/tmp/agenda.org",
		DueDate:      time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
		SubtaskCount: 3,
		CreatedAt:    now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Settings options
type SettingsOption func(*config.Settings)

func WithSubtasks(subs ...config.Subtask) SettingsOption {
	return func(s *config.Settings) {
		s.Subtasks = subs
	}
}

func WithMasterTodo(policy config.TodoPolicy) SettingsOption {
	return func(s *config.Settings) {
		s.MasterTodo = policy
	}
}

func WithScheduledDates() SettingsOption {
	return func(s *config.Settings) {
		s.UseDeadline = false
	}
}

func WithWeekendsAllowed() SettingsOption {
	return func(s *config.Settings) {
		s.AllowWeekends = true
	}
}

// NewTestSettings returns a compact three-step subtask table so test trees
// stay small enough to assert on line by line.
func NewTestSettings(opts ...SettingsOption) config.Settings {
	s := config.Settings{
		Subtasks: []config.Subtask{
			{Name: "Outline", OffsetDays: 7},
			{Name: "Draft", OffsetDays: 3},
			{Name: "Deliver", OffsetDays: 0},
		},
		MasterTodo:  config.TodoPolicy{Kind: config.TodoMirror},
		DefaultTodo: "TODO",
		UseDeadline: true,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
