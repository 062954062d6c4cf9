package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/orgplant/internal/service"
)

// plantFlags is the flag set shared by the new and preview commands.
type plantFlags struct {
	file     string
	after    string
	name     string
	category string
	todo     string
	level    int
	weekends bool
	due      *dateValue
}

func newPlantFlags(app *App) *plantFlags {
	return &plantFlags{due: newDateValue(app.now)}
}

func (f *plantFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Target org file (defaults to org_file from the config)")
	cmd.Flags().StringVar(&f.after, "after", "", "Plant after this headline's subtree (appends at end of file when omitted)")
	cmd.Flags().StringVar(&f.name, "name", "", "Project name")
	cmd.Flags().StringVar(&f.category, "category", "", "Agenda category (defaults to the project name)")
	cmd.Flags().Var(f.due, "due", `Due date: "2024-06-14", "+3d", "fri", "."`)
	cmd.Flags().IntVar(&f.level, "level", 0, "Headline level for the project root (default: anchor's level, or 1)")
	cmd.Flags().StringVar(&f.todo, "todo", "", "Todo state for subtasks (overrides the configured default)")
	cmd.Flags().BoolVar(&f.weekends, "weekends", false, "Keep weekend dates instead of shifting them to Monday")
}

// request assembles the service request. The weekend override only rides
// along when the flag was set explicitly, so the configured policy stays in
// charge otherwise.
func (f *plantFlags) request(cmd *cobra.Command) service.PlantRequest {
	req := service.PlantRequest{
		File:     f.file,
		After:    f.after,
		Name:     f.name,
		Category: f.category,
		Due:      f.due.String(),
		Level:    f.level,
		Todo:     f.todo,
	}
	if cmd.Flags().Changed("weekends") {
		weekends := f.weekends
		req.Weekends = &weekends
	}
	return req
}
