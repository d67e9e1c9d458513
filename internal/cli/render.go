package cli

import (
	"fmt"
	"image"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/youruser/cardmaker/internal/cards"
	imagepkg "github.com/youruser/cardmaker/internal/image"
	"github.com/youruser/cardmaker/internal/util"
)

var renderCmd = &cobra.Command{
	Use:   "render <card.toml>",
	Short: "Render one card described in a TOML file",
	Long: `Render draws the card described by a TOML file. The output format
follows the extension of --output (png or jpg).

Examples:
  cardmaker render dragon.toml -o dragon.png
  cardmaker render dragon.toml -o dragon.jpg --width 400`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		width, _ := cmd.Flags().GetInt("width")

		e, err := loadEnv()
		if err != nil {
			return err
		}
		d, err := cards.LoadTOML(args[0])
		if err != nil {
			return err
		}
		if out == "" {
			out = trimExt(args[0]) + ".png"
		}
		if err := e.renderTo(cmd, d, out, width); err != nil {
			return err
		}
		colorize.New(colorize.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s\n", out)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "output file (default: <card>.png)")
	renderCmd.Flags().Int("width", 0, "scale the output down to this width")
}

func trimExt(p string) string {
	return p[:len(p)-len(filepath.Ext(p))]
}

// renderTo renders d and writes it to path.
func (e *env) renderTo(cmd *cobra.Command, d *cards.CardDescription, path string, width int) error {
	img, err := e.render(cmd, d)
	if err != nil {
		return err
	}
	return writeImage(path, imagepkg.Thumbnail(img, width))
}

func (e *env) render(cmd *cobra.Command, d *cards.CardDescription) (image.Image, error) {
	d.Normalize(e.offsets)
	return e.renderer.Render(cmd.Context(), d, e.assets)
}

func writeImage(path string, img image.Image) error {
	format, err := imagepkg.ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	f, err := util.CreateFile(path)
	if err != nil {
		return err
	}
	if err := imagepkg.Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
