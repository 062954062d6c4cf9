package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/orgplant/internal/cli/formatter"
)

func newNewCmd(app *App) *cobra.Command {
	flags := newPlantFlags(app)
	var yes bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Plant a scheduled project tree in an outline file",
		Long: `Plant a project headline with its scheduled subtask tree in an org
outline file. Missing values are collected interactively when a terminal
is attached; otherwise --name and --due are required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.name == "" || flags.due.String() == "" {
				if !app.interactive() {
					return fmt.Errorf("--name and --due are required when not running interactively")
				}
				if err := runPlantWizard(app, flags); err != nil {
					return err
				}
			}

			ctx := context.Background()
			req := flags.request(cmd)

			preview, err := app.Plant.Preview(ctx, req)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatPlantPreview(preview))

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to write without confirmation; pass --yes")
				}
				confirmed := false
				prompt := fmt.Sprintf("Plant %q into %s?", preview.Tree.Root.Title, preview.File)
				if err := wizardConfirm(prompt, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println(formatter.Dim("Nothing planted."))
					return nil
				}
			}

			result, err := app.Plant.Plant(ctx, req)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatPlanted(result))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Write without confirmation")

	return cmd
}
