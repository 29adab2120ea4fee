package cli

import (
	"share-cli/internal/share"

	"github.com/spf13/cobra"
)

func newOptionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List share options and their exclusion rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := share.DefaultOptionSet()
			var opts []map[string]any
			for _, e := range defaults.Entries() {
				excludes := []string{}
				for _, o := range share.ExclusionRules[e.Name] {
					excludes = append(excludes, string(o))
				}
				opts = append(opts, map[string]any{
					"name":     string(e.Name),
					"label":    share.OptionLabel(e.Name),
					"default":  e.Value,
					"excludes": excludes,
				})
			}
			return writeOut(cmd, app, map[string]any{"data": opts})
		},
	}
}
