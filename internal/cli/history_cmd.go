package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/orgplant/internal/cli/formatter"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently planted projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.History == nil {
				return fmt.Errorf("history is disabled")
			}
			if limit < 1 {
				return fmt.Errorf("--limit must be at least 1")
			}

			plantings, err := app.History.ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatHistory(plantings, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")

	return cmd
}
