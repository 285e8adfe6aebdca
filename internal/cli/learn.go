package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordgarden/wordgarden/internal/controller"
)

func init() {
	cmd := &cobra.Command{
		Use:   "learn [category]",
		Short: "Learn words interactively",
		Long:  "An interactive session: step through a category's words, hear them, flip to Spanish, see pictures, and grow the category.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runLearn,
	}
	RootCmd.AddCommand(cmd)
}

func runLearn(cmd *cobra.Command, args []string) {
	ctrl, done, err := openController(cmd.Context())
	if err != nil {
		exitErr("open", err)
	}
	defer done()

	if len(args) > 0 && !ctrl.SelectCategory(args[0]) {
		exitErr("learn", fmt.Errorf("unknown category %q", args[0]))
	}
	ctrl.Navigate(controller.ViewLearningDetail)

	fmt.Println("n next · p previous · f flip · s say · i picture · x fact · m more words · c <id> switch · q quit")
	showItem(cmd, ctrl)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		verb, rest, _ := strings.Cut(line, " ")

		switch verb {
		case "q", "quit":
			ctrl.Navigate(controller.ViewMain)
			return
		case "n", "next":
			ctrl.AdvanceItem(controller.Next)
			showItem(cmd, ctrl)
		case "p", "prev":
			ctrl.AdvanceItem(controller.Prev)
			showItem(cmd, ctrl)
		case "f", "flip":
			ctrl.ToggleLocalizedView()
			showItem(cmd, ctrl)
		case "s", "say":
			if item, ok := ctrl.CurrentItem(); ok {
				ctrl.Speak(cmd.Context(), item.Name)
			}
		case "x", "fact":
			fact, err := ctrl.FunFact(cmd.Context())
			if err != nil {
				reportErr(err)
				continue
			}
			fmt.Println(fact)
		case "i", "picture":
			payload, err := ctrl.GenerateImageForCurrentItem(cmd.Context())
			if err != nil {
				reportErr(err)
				continue
			}
			if payload == "" {
				fmt.Println("Still working on a picture...")
				continue
			}
			fmt.Printf("Picture ready (%d bytes). Use the image command to save it.\n", len(payload))
		case "m", "more":
			added, err := ctrl.ExpandCurrentCategory(cmd.Context())
			if err != nil {
				reportErr(err)
				continue
			}
			if len(added) == 0 {
				fmt.Println("No new words this time. Try again!")
				continue
			}
			for _, it := range added {
				fmt.Printf("new: %s %s (%s)\n", it.Glyph, it.Name, it.NameES)
			}
		case "c", "cat":
			if !ctrl.SelectCategory(strings.TrimSpace(rest)) {
				fmt.Println("No such category. Try the categories command.")
				continue
			}
			showItem(cmd, ctrl)
		case "":
		default:
			fmt.Println("Unknown command. n/p/f/s/i/x/m/c <id>/q")
		}
	}
}

// showItem renders the current item. It re-queries the asset cache on every
// item change: a hit is shown immediately, a miss shows the glyph until the
// learner explicitly asks for a picture.
func showItem(cmd *cobra.Command, ctrl *controller.Controller) {
	cat, ok := ctrl.CurrentCategory()
	if !ok {
		fmt.Println("No category selected.")
		return
	}
	item, ok := ctrl.CurrentItem()
	if !ok {
		fmt.Printf("%s has no words yet. Try m to grow it.\n", cat.Name)
		return
	}

	name := item.Name
	if ctrl.Session().ShowLocalized {
		name = fmt.Sprintf("%s · %s", item.Name, item.NameES)
	}

	picture := "no picture yet"
	if _, cached := ctrl.CachedImage(cmd.Context()); cached {
		picture = "picture cached"
	}

	fmt.Printf("[%s %d/%d] %s  %s  (%s)\n",
		cat.Name, ctrl.Session().ItemIndex+1, len(cat.Items), item.Glyph, name, picture)
}
