package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "expand [category]",
		Short: "Grow a category with freshly generated words",
		Args:  cobra.ExactArgs(1),
		Run:   runExpand,
	}
	RootCmd.AddCommand(cmd)
}

func runExpand(cmd *cobra.Command, args []string) {
	ctrl, done, err := openController(cmd.Context())
	if err != nil {
		exitErr("open", err)
	}
	defer done()

	if !ctrl.SelectCategory(args[0]) {
		exitErr("expand", fmt.Errorf("unknown category %q", args[0]))
	}

	added, err := ctrl.ExpandCurrentCategory(cmd.Context())
	if err != nil {
		reportErr(err)
		return
	}
	if len(added) == 0 {
		fmt.Println("No new words this time. Try again!")
		return
	}

	fmt.Printf("%d new words:\n", len(added))
	for _, it := range added {
		fmt.Printf("%s  %-12s %s\n", it.Glyph, it.Name, it.NameES)
	}
}
