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
		Use:   "game",
		Short: "Play a word game",
		Run:   runGame,
	}
	RootCmd.AddCommand(cmd)
}

func runGame(cmd *cobra.Command, args []string) {
	ctrl, done, err := openController(cmd.Context())
	if err != nil {
		exitErr("open", err)
	}
	defer done()

	scanner := bufio.NewScanner(os.Stdin)

	ctrl.Navigate(controller.ViewGameTypes)
	fmt.Println("Pick a game:")
	modes := ctrl.GameModes()
	for i, m := range modes {
		fmt.Printf("  %d. %s\n", i+1, m)
	}
	mode, ok := pickIndex(scanner, len(modes))
	if !ok {
		return
	}
	ctrl.SelectGameMode(modes[mode])

	fmt.Println("Pick a category:")
	cats := ctrl.Catalog().Categories
	for i, cat := range cats {
		fmt.Printf("  %d. %s %s\n", i+1, cat.Glyph, cat.Name)
	}
	catIdx, ok := pickIndex(scanner, len(cats))
	if !ok {
		return
	}
	if !ctrl.StartGame(cats[catIdx].ID) {
		exitErr("game", fmt.Errorf("could not start game in %q", cats[catIdx].ID))
	}

	fmt.Println("Type the English word. Empty answer quits.")
	for {
		item, ok := ctrl.NextRound()
		if !ok {
			fmt.Println("This category has no words yet.")
			break
		}

		switch ctrl.Session().GameMode {
		case controller.GameListening:
			fmt.Println("Listen...")
			ctrl.Speak(cmd.Context(), item.Name)
		default:
			fmt.Printf("%s  %s\n", item.Glyph, item.NameES)
		}

		fmt.Print("? ")
		if !scanner.Scan() {
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			break
		}

		if ctrl.CheckAnswer(item, answer) {
			fmt.Printf("Yes! %s  Score: %d\n", item.Name, ctrl.Session().Score)
		} else {
			fmt.Printf("It was %s. Score: %d\n", item.Name, ctrl.Session().Score)
		}
	}

	ctrl.Navigate(controller.ViewMain)
	fmt.Printf("Final score: %d\n", ctrl.Session().Score)
}

func pickIndex(scanner *bufio.Scanner, count int) (int, bool) {
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return 0, false
		}
		var n int
		if _, err := fmt.Sscanf(strings.TrimSpace(scanner.Text()), "%d", &n); err == nil && n >= 1 && n <= count {
			return n - 1, true
		}
		fmt.Printf("Pick a number from 1 to %d.\n", count)
	}
}
