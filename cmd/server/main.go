package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/cardmaker/internal/api"
	"github.com/youruser/cardmaker/internal/assets"
	"github.com/youruser/cardmaker/internal/config"
	imagepkg "github.com/youruser/cardmaker/internal/image"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to config.toml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	imagepkg.SetLogger(logger)

	reg, err := cfg.FontRegistry()
	if err != nil {
		log.Fatal(err)
	}
	opts := []imagepkg.Option{imagepkg.WithResolveTimeout(cfg.ResolveTimeout())}
	if cfg.Assets.Cache {
		opts = append(opts, imagepkg.WithCache(assets.NewCache()))
	}

	r := gin.Default()
	api.RegisterRoutes(r, &api.Handler{
		Renderer: imagepkg.NewRenderer(reg, opts...),
		Assets:   cfg.Resolver(),
		Offsets:  cfg.LanguageOffsets(),

		MaxBodyBytes: int64(cfg.Server.MaxBodyMB) << 20,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Server.Port
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
