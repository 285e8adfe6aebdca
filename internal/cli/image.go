package cli

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "image [category] [word]",
		Short: "Show or generate the picture for a word",
		Args:  cobra.ExactArgs(2),
		Run:   runImage,
	}
	cmd.Flags().StringP("out", "o", "", "Write the image to this file (default: <word>.png)")
	RootCmd.AddCommand(cmd)
}

func runImage(cmd *cobra.Command, args []string) {
	ctrl, done, err := openController(cmd.Context())
	if err != nil {
		exitErr("open", err)
	}
	defer done()

	if !ctrl.SelectCategory(args[0]) {
		exitErr("image", fmt.Errorf("unknown category %q", args[0]))
	}
	if !ctrl.SelectItemNamed(args[1]) {
		exitErr("image", fmt.Errorf("no word %q in category %q", args[1], args[0]))
	}

	payload, cached := ctrl.CachedImage(cmd.Context())
	if !cached {
		payload, err = ctrl.GenerateImageForCurrentItem(cmd.Context())
		if err != nil {
			reportErr(err)
			return
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		exitErr("decode image", err)
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = args[1] + ".png"
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		exitErr("write image", err)
	}

	source := "generated"
	if cached {
		source = "from cache"
	}
	fmt.Printf("%s (%s, %d bytes)\n", out, source, len(raw))
}
