package cli

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/youruser/cardmaker/internal/cards"
	"github.com/youruser/cardmaker/internal/config"
)

var templateKeyCmd = &cobra.Command{
	Use:   "template-key",
	Short: "Print the template a card taxonomy selects",
	Example: `  cardmaker template-key --type Monster --subtype Xyz --pendulum
  cardmaker template-key --type Spell`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _ := cmd.Flags().GetString("type")
		subtype, _ := cmd.Flags().GetString("subtype")
		pendulum, _ := cmd.Flags().GetBool("pendulum")
		switch ct := cards.CardType(t); ct {
		case cards.Monster, cards.Spell, cards.Trap:
			fmt.Fprintln(cmd.OutOrStdout(), cards.TemplateKeyFor(ct, subtype, pendulum))
			return nil
		}
		return fmt.Errorf("unknown card type %q", t)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cardmaker configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(configPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
		}
		if err := config.Write(configPath, config.Default()); err != nil {
			return err
		}
		colorize.New(colorize.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ wrote %s\n", configPath)
		return nil
	},
}

func init() {
	templateKeyCmd.Flags().String("type", "Monster", "Monster, Spell or Trap")
	templateKeyCmd.Flags().String("subtype", "Normal", "monster subtype (Normal, Effect, Xyz, Link, ...)")
	templateKeyCmd.Flags().Bool("pendulum", false, "pendulum monster")
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}
