package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/orgplant/internal/cli/formatter"
)

func newPreviewCmd(app *App) *cobra.Command {
	flags := newPlantFlags(app)
	var pager bool
	var orgOut bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the tree a request would plant, without writing",
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, err := app.Plant.Preview(context.Background(), flags.request(cmd))
			if err != nil {
				return err
			}

			if orgOut {
				// Raw block, unstyled, for piping into an org buffer.
				fmt.Print(preview.Block)
				return nil
			}

			out := formatter.FormatPlantPreview(preview)
			if pager && app.interactive() {
				return runPager("Preview", out)
			}
			fmt.Println(out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&pager, "pager", false, "Scroll the preview in a pager")
	cmd.Flags().BoolVar(&orgOut, "org", false, "Print the raw org block instead of the formatted tree")

	return cmd
}
