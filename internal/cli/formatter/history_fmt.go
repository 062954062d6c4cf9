package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/orgplant/internal/domain"
)

// FormatHistory renders recent plantings, newest first.
func FormatHistory(plantings []*domain.Planting, now time.Time) string {
	if len(plantings) == 0 {
		return Dim("No plantings recorded yet.")
	}

	headers := []string{"ID", "PROJECT", "DUE", "SUBTASKS", "FILE", "PLANTED"}
	rows := make([][]string, 0, len(plantings))
	for _, p := range plantings {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			p.DueDate.Format("2006-01-02"),
			fmt.Sprintf("%d", p.SubtaskCount),
			Dim(p.File),
			Dim(HumanTimestampFrom(p.CreatedAt, now)),
		})
	}

	return RenderBox("History", RenderTable(headers, rows))
}
