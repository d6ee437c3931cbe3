package tui

import (
	"github.com/blackwell-systems/bookmgr/internal/util"
	"github.com/spf13/cobra"
)

// ShouldUseTUI returns true if the command should launch the interactive UI.
// The UI is used when:
// - stdout and stdin are terminals (not piped or redirected)
// - --no-interactive is not set
func ShouldUseTUI(cmd *cobra.Command) bool {
	if !util.IsTTY() || !util.IsStdinTTY() {
		return false
	}

	noInteractive, _ := cmd.Flags().GetBool("no-interactive")
	return !noInteractive
}
