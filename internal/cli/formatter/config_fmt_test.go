package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/orgplant/internal/config"
	"github.com/alexanderramin/orgplant/internal/testutil"
)

func TestFormatSettings_Defaults(t *testing.T) {
	out := stripANSI(FormatSettings(config.Default(), "/home/amr/.orgplant/config.json"))

	assert.Contains(t, out, "CONFIGURATION")
	assert.Contains(t, out, "/home/amr/.orgplant/config.json")
	assert.Contains(t, out, "Scope the work")
	assert.Contains(t, out, "21 days before due")
	assert.Contains(t, out, "on the due date")
	assert.Contains(t, out, "mirror subtask state")
	assert.Contains(t, out, "DEADLINE")
	assert.Contains(t, out, "shifted to Monday")
}

func TestFormatSettings_Variants(t *testing.T) {
	s := testutil.NewTestSettings(
		testutil.WithMasterTodo(config.TodoPolicy{Kind: config.TodoCustom, Custom: "PROJECT"}),
		testutil.WithScheduledDates(),
		testutil.WithWeekendsAllowed(),
	)
	s.OrgFile = "/home/amr/org/agenda.org"

	out := stripANSI(FormatSettings(s, ""))

	assert.Contains(t, out, "PROJECT")
	assert.Contains(t, out, "SCHEDULED")
	assert.Contains(t, out, "allowed")
	assert.Contains(t, out, "/home/amr/org/agenda.org")
}

func TestFormatSettings_NegativeOffset(t *testing.T) {
	s := testutil.NewTestSettings(testutil.WithSubtasks(
		config.Subtask{Name: "Retro", OffsetDays: -2},
		config.Subtask{Name: "Prep", OffsetDays: 1},
	))

	out := stripANSI(FormatSettings(s, ""))
	assert.Contains(t, out, "2 days after due")
	assert.Contains(t, out, "1 day before due")
}

func TestFormatSettings_DisabledTodo(t *testing.T) {
	s := testutil.NewTestSettings(testutil.WithMasterTodo(config.TodoPolicy{Kind: config.TodoDisabled}))
	s.DefaultTodo = ""

	out := stripANSI(FormatSettings(s, ""))
	assert.Contains(t, out, "none")
}
