package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/konsole/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	bannerFont  string
	bannerColor string
)

func init() {
	bannerCmd.Flags().StringVar(&bannerFont, "font", "standard", "figlet font name")
	bannerCmd.Flags().StringVar(&bannerColor, "color", "CYAN", "foreground color: a table name or a code 0-255")
	RootCmd.AddCommand(bannerCmd)
}

// resetBannerCommandState resets the banner command's global state for testing.
func resetBannerCommandState() {
	bannerFont = "standard"
	bannerColor = "CYAN"
}

var bannerCmd = &cobra.Command{
	Use:   "banner TEXT",
	Short: "Print TEXT as ASCII art",
	Long: `Renders TEXT with a figlet font and prints it in the given color,
whatever the level.

Examples:
  konsole banner konsole
  konsole banner --font alligator2 --color GREEN Release`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ui.ParseColor(bannerColor)
		if err != nil {
			return err
		}
		art, err := renderBanner(strings.Join(args, " "), bannerFont)
		if err != nil {
			return err
		}
		Logger.Raw(strings.TrimRight(art, "\n"), c, true)
		return nil
	},
}

// renderBanner renders text with go-figure, which panics on unknown fonts.
func renderBanner(text, font string) (art string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unknown font %q", font)
		}
	}()
	return figure.NewFigure(text, font, false).String(), nil
}
