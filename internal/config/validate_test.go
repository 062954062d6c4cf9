package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Defaults(t *testing.T) {
	assert.Empty(t, Validate(Default()))
}

func TestValidate_EmptySubtaskTable(t *testing.T) {
	s := Default()
	s.Subtasks = nil
	errs := Validate(s)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one subtask")
}

func TestValidate_AccumulatesAllErrors(t *testing.T) {
	s := Default()
	s.Subtasks = []Subtask{
		{Name: "", OffsetDays: 3},
		{Name: "Deliver", OffsetDays: 0},
		{Name: "Deliver", OffsetDays: 1},
	}
	s.MasterTodo = TodoPolicy{Kind: TodoCustom, Custom: ""}

	errs := Validate(s)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "subtask[0]: name is required")
	assert.Contains(t, errs[1].Error(), "duplicate name")
	assert.Contains(t, errs[2].Error(), "master_todo")
}
