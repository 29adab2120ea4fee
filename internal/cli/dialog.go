package cli

import (
	"share-cli/internal/clipboard"
	"share-cli/internal/share"

	"github.com/spf13/cobra"
)

func newDialogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dialog [url]",
		Short: "Open the interactive share dialog",
		Long:  "Open the interactive share dialog. Without a URL the dialog uses --location, the config's location, or the web URL of the current git remote.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := ""
			if len(args) == 1 {
				base = args[0]
			}
			return runDialog(app, base)
		},
	}
}

func clipboardFor(dryRun bool) share.Clipboard {
	if dryRun {
		return &clipboard.Recorder{}
	}
	return clipboard.System{}
}
