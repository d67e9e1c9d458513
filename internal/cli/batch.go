package cli

import (
	"fmt"
	"image"
	"path/filepath"
	"regexp"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/youruser/cardmaker/internal/cards"
	imagepkg "github.com/youruser/cardmaker/internal/image"
)

var batchCmd = &cobra.Command{
	Use:   "batch <cards.csv>",
	Short: "Render every card of a CSV file",
	Long: `Batch renders each row of a CSV file into the output directory. Rows
can be narrowed with --type, --rarity and --search. With --sheet the
rendered cards are also laid out on a single preview image.

Examples:
  cardmaker batch set.csv -o out/
  cardmaker batch set.csv -o out/ --type Monster --sheet out/sheet.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir, _ := cmd.Flags().GetString("output")
		types, _ := cmd.Flags().GetStringSlice("type")
		rarities, _ := cmd.Flags().GetStringSlice("rarity")
		search, _ := cmd.Flags().GetString("search")
		sheet, _ := cmd.Flags().GetString("sheet")
		columns, _ := cmd.Flags().GetInt("columns")

		e, err := loadEnv()
		if err != nil {
			return err
		}
		all, err := cards.LoadCSV(args[0])
		if err != nil {
			return err
		}
		opt := cards.FilterOptions{FreeWords: search}
		for _, t := range types {
			opt.Types = append(opt.Types, cards.CardType(t))
		}
		for _, r := range rarities {
			opt.Rarities = append(opt.Rarities, cards.Rarity(r))
		}
		selected := cards.Filter(all, opt)

		ok := colorize.New(colorize.FgGreen)
		bad := colorize.New(colorize.FgRed)
		// Only thumbnails are kept, and only when a sheet was asked for.
		var thumbs []image.Image
		done, failed := 0, 0
		for i := range selected {
			d := &selected[i]
			name := fmt.Sprintf("%03d-%s.png", i+1, slug(d.Title))
			out := filepath.Join(outDir, name)
			img, err := e.render(cmd, d)
			if err == nil {
				err = writeImage(out, img)
			}
			if err != nil {
				failed++
				bad.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", name, err)
				continue
			}
			done++
			if sheet != "" {
				thumbs = append(thumbs, imagepkg.Thumbnail(img, imagepkg.SheetCardWidth))
			}
			ok.Fprintf(cmd.OutOrStdout(), "✓ %s\n", out)
		}

		if len(thumbs) > 0 {
			if err := writeImage(sheet, imagepkg.ComposeSheet(thumbs, columns, imagepkg.SheetCardWidth)); err != nil {
				return err
			}
			ok.Fprintf(cmd.OutOrStdout(), "✓ %s\n", sheet)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d of %d cards rendered\n", done, len(selected))
		if failed > 0 {
			return fmt.Errorf("%d cards failed", failed)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringP("output", "o", ".", "output directory")
	batchCmd.Flags().StringSlice("type", nil, "only render these card types")
	batchCmd.Flags().StringSlice("rarity", nil, "only render these rarities")
	batchCmd.Flags().String("search", "", "only render cards whose text contains all these words")
	batchCmd.Flags().String("sheet", "", "also write a contact sheet of the rendered cards")
	batchCmd.Flags().Int("columns", 5, "contact sheet columns")
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slug(s string) string {
	s = strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if s == "" {
		return "card"
	}
	return s
}
