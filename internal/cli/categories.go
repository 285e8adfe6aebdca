package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordgarden/wordgarden/internal/controller"
)

func init() {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the word categories",
		Run:   runCategories,
	}
	RootCmd.AddCommand(cmd)
}

func runCategories(cmd *cobra.Command, args []string) {
	ctrl, done, err := openController(cmd.Context())
	if err != nil {
		exitErr("open", err)
	}
	defer done()

	ctrl.Navigate(controller.ViewAlphabet)
	for _, cat := range ctrl.Catalog().Categories {
		fmt.Printf("%s  %-10s %2d words  (%s)\n", cat.Glyph, cat.Name, len(cat.Items), cat.ID)
	}
}
