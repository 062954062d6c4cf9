// Package config loads and validates the orgplant settings file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Subtask is one entry of the generated-subtask table. OffsetDays counts
// days preceding the project due date; negative values land after it.
type Subtask struct {
	Name       string `json:"name"`
	OffsetDays int    `json:"offset_days"`
}

// TodoPolicyKind selects how the project root headline gets its todo marker.
type TodoPolicyKind string

const (
	TodoDisabled TodoPolicyKind = "disabled"
	TodoMirror   TodoPolicyKind = "mirror"
	TodoCustom   TodoPolicyKind = "custom"
)

// TodoPolicy is the master-todo setting. In JSON it is boolean-or-string:
// true mirrors the subtask todo state onto the project, false disables the
// marker, and a string is used literally. Any other JSON value reads as
// disabled rather than failing the load.
type TodoPolicy struct {
	Kind   TodoPolicyKind
	Custom string
}

func (p *TodoPolicy) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			p.Kind = TodoMirror
		} else {
			p.Kind = TodoDisabled
		}
		p.Custom = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Kind = TodoCustom
		p.Custom = s
		return nil
	}
	p.Kind = TodoDisabled
	p.Custom = ""
	return nil
}

func (p TodoPolicy) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case TodoMirror:
		return json.Marshal(true)
	case TodoCustom:
		return json.Marshal(p.Custom)
	default:
		return json.Marshal(false)
	}
}

// ProjectTodo resolves the todo marker for the project root headline given
// the effective subtask todo state. Empty means no marker. The zero policy
// behaves as disabled.
func (p TodoPolicy) ProjectTodo(subtaskTodo string) string {
	switch p.Kind {
	case TodoCustom:
		return p.Custom
	case TodoMirror:
		return subtaskTodo
	default:
		return ""
	}
}

// Settings is the process-wide configuration, read once at startup and
// treated as immutable afterward.
type Settings struct {
	Subtasks      []Subtask  `json:"subtasks"`
	MasterTodo    TodoPolicy `json:"master_todo"`
	DefaultTodo   string     `json:"default_todo"`
	UseDeadline   bool       `json:"use_deadline"`
	AllowWeekends bool       `json:"allow_weekends"`
	OrgFile       string     `json:"org_file,omitempty"`
}

// Default returns the built-in settings: a generic delivery ramp counting
// back from the due date, mirrored master todo, deadline semantics, and
// weekend avoidance.
func Default() Settings {
	return Settings{
		Subtasks: []Subtask{
			{Name: "Scope the work", OffsetDays: 21},
			{Name: "First draft", OffsetDays: 14},
			{Name: "Review pass", OffsetDays: 7},
			{Name: "Revisions", OffsetDays: 3},
			{Name: "Final check", OffsetDays: 1},
			{Name: "Deliver", OffsetDays: 0},
		},
		MasterTodo:    TodoPolicy{Kind: TodoMirror},
		DefaultTodo:   "TODO",
		UseDeadline:   true,
		AllowWeekends: false,
	}
}

// Load reads settings from path. A missing file yields the defaults;
// malformed JSON is an error. Structural checks are left to Validate so a
// questionable file can still be inspected with `config show`.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings as indented JSON, creating parent directories.
func Save(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
