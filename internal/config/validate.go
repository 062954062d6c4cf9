package config

import "fmt"

// Validate checks settings for structural errors.
// Returns a slice of errors (empty if valid).
func Validate(s Settings) []error {
	var errs []error

	if len(s.Subtasks) == 0 {
		errs = append(errs, fmt.Errorf("at least one subtask is required"))
	}

	seen := map[string]bool{}
	for i, st := range s.Subtasks {
		if st.Name == "" {
			errs = append(errs, fmt.Errorf("subtask[%d]: name is required", i))
		}
		if seen[st.Name] {
			errs = append(errs, fmt.Errorf("subtask[%d]: duplicate name %q", i, st.Name))
		}
		seen[st.Name] = true
	}

	if s.MasterTodo.Kind == TodoCustom && s.MasterTodo.Custom == "" {
		errs = append(errs, fmt.Errorf("master_todo: custom todo state must not be empty"))
	}

	return errs
}
