package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"github.com/milk9111/convoy/config"
	"github.com/milk9111/convoy/logging"
	"github.com/milk9111/convoy/prefabs"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		logging.New(os.Stderr, "info", true).Fatal().Err(err).Msg("load config")
	}
	log := logging.New(os.Stderr, cfg.LogLevel, true)
	prefabs.Dir = cfg.Scene.Dir

	game, err := NewGame(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("scene", cfg.Scene.File).Msg("build scene")
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
