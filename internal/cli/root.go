package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/orgplant/internal/config"
	"github.com/alexanderramin/orgplant/internal/repository"
	"github.com/alexanderramin/orgplant/internal/service"
)

// App holds everything CLI commands need: the planting service, the loaded
// settings, and the probes that decide interactive behavior.
type App struct {
	Plant      service.PlantService
	History    repository.PlantingRepo // nil disables the history command
	Settings   config.Settings
	ConfigPath string

	// IsInteractive reports whether the process is attached to a terminal.
	// Wizards, confirmations, and the pager only run when it returns true.
	IsInteractive func() bool

	// Now is the clock used for resolving relative date input; nil means
	// time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "orgplant" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "orgplant",
		Short: "Grow scheduled project trees in org outline files",
	}

	root.AddCommand(
		newNewCmd(app),
		newPreviewCmd(app),
		newConfigCmd(app),
		newHistoryCmd(app),
	)

	return root
}
