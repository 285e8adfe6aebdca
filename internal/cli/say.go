package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "say [text]",
		Short: "Speak text aloud",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSay,
	}
	RootCmd.AddCommand(cmd)
}

func runSay(cmd *cobra.Command, args []string) {
	ctrl, done, err := openController(cmd.Context())
	if err != nil {
		exitErr("open", err)
	}
	defer done()

	ctrl.Speak(cmd.Context(), strings.Join(args, " "))
}
