package cli

import (
	"share-cli/internal/share"

	"github.com/spf13/cobra"
)

func newCopyCmd(app *App) *cobra.Command {
	var flags optionFlags
	var dryRun bool

	cmd := &cobra.Command{
		Use:       "copy <url|embed|markdown|html> [url]",
		Short:     "Copy one representation to the clipboard",
		Long:      "Copy one representation to the clipboard. Copying is fire-and-forget: clipboard failures are not reported (run with log.file set to see them).",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"url", "embed", "markdown", "html"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, ok := share.ParseTarget(args[0])
			if !ok {
				return writeErr(cmd, errUnknownTarget(args[0]))
			}
			base := ""
			if len(args) == 2 {
				base = args[1]
			}

			ctl := app.newController(base, clipboardFor(dryRun))
			if err := flags.apply(ctl); err != nil {
				return writeErr(cmd, err)
			}
			text, _ := ctl.Representations().Pick(target)
			ctl.CopyTarget(target)

			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"target":   string(target),
				"label":    share.TargetLabel(target),
				"text":     text,
				"shareUrl": ctl.ShareURL(),
				"dryRun":   dryRun,
			}})
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Do not touch the system clipboard")
	return cmd
}
