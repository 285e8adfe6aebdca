package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "words [category]",
		Short: "List the words in a category",
		Args:  cobra.ExactArgs(1),
		Run:   runWords,
	}
	RootCmd.AddCommand(cmd)
}

func runWords(cmd *cobra.Command, args []string) {
	ctrl, done, err := openController(cmd.Context())
	if err != nil {
		exitErr("open", err)
	}
	defer done()

	if !ctrl.SelectCategory(args[0]) {
		exitErr("words", fmt.Errorf("unknown category %q", args[0]))
	}

	cat, _ := ctrl.CurrentCategory()
	for _, it := range cat.Items {
		fmt.Printf("%s  %-12s %s\n", it.Glyph, it.Name, it.NameES)
	}
}
