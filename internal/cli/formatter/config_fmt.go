package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/orgplant/internal/config"
)

// FormatSettings renders the active configuration as a card: the subtask
// table first, then the policy fields.
func FormatSettings(s config.Settings, path string) string {
	var b strings.Builder

	if path != "" {
		b.WriteString(Dim(path) + "\n\n")
	}

	headers := []string{"SUBTASK", "OFFSET"}
	rows := make([][]string, 0, len(s.Subtasks))
	for _, sub := range s.Subtasks {
		rows = append(rows, []string{Bold(sub.Name), offsetLabel(sub.OffsetDays)})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	writeField(&b, "MASTER TODO ", todoPolicyLabel(s.MasterTodo))
	writeField(&b, "SUBTASK TODO", todoStateLabel(s.DefaultTodo))
	writeField(&b, "DATES       ", datesLabel(s.UseDeadline))
	writeField(&b, "WEEKENDS    ", weekendLabel(s.AllowWeekends))
	if s.OrgFile != "" {
		writeField(&b, "FILE        ", s.OrgFile)
	}

	return RenderBox("Configuration", b.String())
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s  %s\n", StyleDim.Render(label), StyleFg.Render(value))
}

func offsetLabel(days int) string {
	switch {
	case days == 0:
		return "on the due date"
	case days == 1:
		return "1 day before due"
	case days > 1:
		return fmt.Sprintf("%d days before due", days)
	case days == -1:
		return "1 day after due"
	default:
		return fmt.Sprintf("%d days after due", -days)
	}
}

func todoPolicyLabel(p config.TodoPolicy) string {
	switch p.Kind {
	case config.TodoMirror:
		return "mirror subtask state"
	case config.TodoCustom:
		return p.Custom
	default:
		return "none"
	}
}

func todoStateLabel(todo string) string {
	if todo == "" {
		return "none"
	}
	return todo
}

func datesLabel(useDeadline bool) string {
	if useDeadline {
		return "DEADLINE"
	}
	return "SCHEDULED"
}

func weekendLabel(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "shifted to Monday"
}
