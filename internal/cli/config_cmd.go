package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/orgplant/internal/cli/formatter"
	"github.com/alexanderramin/orgplant/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and manage the configuration",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigInitCmd(app),
		newConfigValidateCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(formatter.FormatSettings(app.Settings, app.ConfigPath))
			return nil
		},
	}
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ConfigPath == "" {
				return fmt.Errorf("no config path configured")
			}
			if _, err := os.Stat(app.ConfigPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", app.ConfigPath)
			}
			if err := config.Save(app.ConfigPath, config.Default()); err != nil {
				return err
			}
			fmt.Printf("Wrote default configuration to %s\n", app.ConfigPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration for problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			errs := config.Validate(app.Settings)
			if len(errs) == 0 {
				fmt.Println(formatter.StyleGreen.Render("✔") + " Configuration OK " +
					formatter.Dim(fmt.Sprintf("(%d subtasks)", len(app.Settings.Subtasks))))
				return nil
			}

			for _, e := range errs {
				fmt.Println(formatter.StyleRed.Render("✘ ") + e.Error())
			}
			return fmt.Errorf("%d configuration problem(s)", len(errs))
		},
	}
}
