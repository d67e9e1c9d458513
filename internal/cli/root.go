package cli

import (
	"github.com/spf13/cobra"

	"github.com/youruser/cardmaker/internal/assets"
	"github.com/youruser/cardmaker/internal/cards"
	"github.com/youruser/cardmaker/internal/config"
	imagepkg "github.com/youruser/cardmaker/internal/image"
)

var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardmaker",
	Short: "Render custom Yu-Gi-Oh card images",
	Long: `Cardmaker renders card images from card descriptions using a template
and icon asset pack. Cards are described in TOML (one card) or CSV (a batch).`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to config.toml")
	RootCmd.AddCommand(renderCmd, batchCmd, templateKeyCmd, configCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// env is what the rendering commands share.
type env struct {
	cfg      *config.Config
	renderer *imagepkg.Renderer
	assets   assets.Resolver
	offsets  map[string]cards.LayoutOffsets
}

func loadEnv() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return nil, err
	}
	imagepkg.SetLogger(logger)

	reg, err := cfg.FontRegistry()
	if err != nil {
		return nil, err
	}
	opts := []imagepkg.Option{imagepkg.WithResolveTimeout(cfg.ResolveTimeout())}
	if cfg.Assets.Cache {
		opts = append(opts, imagepkg.WithCache(assets.NewCache()))
	}
	return &env{
		cfg:      cfg,
		renderer: imagepkg.NewRenderer(reg, opts...),
		assets:   cfg.Resolver(),
		offsets:  cfg.LanguageOffsets(),
	}, nil
}
