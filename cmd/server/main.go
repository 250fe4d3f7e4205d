package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tdhowe/Ballquest/internal/api"
	"github.com/tdhowe/Ballquest/internal/cards"
	"github.com/tdhowe/Ballquest/internal/config"
	imagepkg "github.com/tdhowe/Ballquest/internal/image"
	"github.com/tdhowe/Ballquest/internal/render"
)

func main() {
	cfg := config.FromEnv()

	// Load cards at startup (best-effort)
	if _, err := cards.LoadCardsFromDataDir(cfg.DataDir); err != nil {
		log.Println("Warning: failed to load CSVs at startup:", err)
	}

	fonts := render.DefaultFonts()
	if cfg.FontDir != "" {
		f, err := render.LoadFonts(cfg.FontDir)
		if err != nil {
			log.Fatal(err)
		}
		fonts = f
	}
	lib := imagepkg.NewLibrary(cfg.ImagesDir)
	lib.Remote = cfg.RemoteArtwork

	s := &api.Server{
		DataDir:  cfg.DataDir,
		Renderer: render.NewRenderer(fonts, lib),
	}

	r := gin.Default()
	api.RegisterRoutes(r, s)

	log.Println("starting server on http://localhost:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
