package cli

import (
	"share-cli/internal/share"

	"github.com/spf13/cobra"
)

func newLinkCmd(app *App) *cobra.Command {
	var flags optionFlags

	cmd := &cobra.Command{
		Use:   "link [url]",
		Short: "Print the share URL, embed snippet and badges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := ""
			if len(args) == 1 {
				base = args[0]
			}
			ctl := app.newController(base, nil)
			if err := flags.apply(ctl); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": linkPayload(ctl)})
		},
	}
	flags.register(cmd)
	return cmd
}

type linkData struct {
	share.State
	Composed bool `json:"composed"`
}

func linkPayload(ctl *share.Controller) linkData {
	return linkData{State: ctl.State(), Composed: ctl.Composed()}
}
