package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "fact [category] [word]",
		Short: "Hear a fun fact about a word",
		Args:  cobra.ExactArgs(2),
		Run:   runFact,
	}
	RootCmd.AddCommand(cmd)
}

func runFact(cmd *cobra.Command, args []string) {
	ctrl, done, err := openController(cmd.Context())
	if err != nil {
		exitErr("open", err)
	}
	defer done()

	if !ctrl.SelectCategory(args[0]) {
		exitErr("fact", fmt.Errorf("unknown category %q", args[0]))
	}
	if !ctrl.SelectItemNamed(args[1]) {
		exitErr("fact", fmt.Errorf("no word %q in category %q", args[1], args[0]))
	}

	fact, err := ctrl.FunFact(cmd.Context())
	if err != nil {
		reportErr(err)
		return
	}
	fmt.Println(fact)
}
