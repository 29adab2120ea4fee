package cli

import (
	"strings"

	"share-cli/internal/share"

	"github.com/spf13/cobra"
)

// optionFlags are the switch flags shared by link and copy.
type optionFlags struct {
	hideExplorer     bool
	showTransactions bool
	showAppview      bool
	toggles          []string
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.hideExplorer, "hide-explorer", false, "Hide the file explorer")
	cmd.Flags().BoolVar(&f.showTransactions, "show-transactions", false, "Open the transactions panel")
	cmd.Flags().BoolVar(&f.showAppview, "show-appview", false, "Open the app view")
	cmd.Flags().StringArrayVar(&f.toggles, "toggle", nil, "Toggle an option by name, in order (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("show-transactions", "show-appview")
}

// apply replays the flags as dialog toggles: switch flags first (in option
// order), then each --toggle as given.
func (f *optionFlags) apply(ctl *share.Controller) error {
	var seq []share.Option
	if f.hideExplorer {
		seq = append(seq, share.HideExplorer)
	}
	if f.showTransactions {
		seq = append(seq, share.ShowTransactions)
	}
	if f.showAppview {
		seq = append(seq, share.ShowAppview)
	}
	for _, raw := range f.toggles {
		name := share.Option(strings.TrimSpace(raw))
		if !share.IsKnownOption(name) {
			return errUnknownOption(raw)
		}
		seq = append(seq, name)
	}
	for _, name := range seq {
		ctl.OnToggle(name)
	}
	return nil
}
