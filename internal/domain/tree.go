package domain

import "fmt"

// Property is a single key/value entry in a headline's property drawer.
type Property struct {
	Key   string
	Value string
}

// ProjectTree is a project headline owning its property drawer entries and
// an ordered sequence of subtask headlines. Ownership is strictly
// hierarchical: subtasks belong to exactly one tree and are never shared.
type ProjectTree struct {
	Root       HeadlineRecord
	Properties []Property
	Subtasks   []HeadlineRecord
}

// Validate checks the root, every subtask, and the level relationship
// between them (each subtask sits exactly one level below the root).
func (t *ProjectTree) Validate() error {
	if err := t.Root.Validate(); err != nil {
		return fmt.Errorf("root: %w", err)
	}
	for i := range t.Subtasks {
		s := &t.Subtasks[i]
		if err := s.Validate(); err != nil {
			return fmt.Errorf("subtask[%d]: %w", i, err)
		}
		if s.Level != t.Root.Level+1 {
			return fmt.Errorf("subtask[%d] %q: level %d, want %d", i, s.Title, s.Level, t.Root.Level+1)
		}
	}
	return nil
}

// Category returns the value of the CATEGORY property, or "".
func (t *ProjectTree) Category() string {
	for _, p := range t.Properties {
		if p.Key == "CATEGORY" {
			return p.Value
		}
	}
	return ""
}
