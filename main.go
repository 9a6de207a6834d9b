package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/golangdaddy/swerve/pkg/config"
	"github.com/golangdaddy/swerve/pkg/game"
	"github.com/golangdaddy/swerve/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error); overrides the config")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Swerve")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game.NewGame(cfg, logger)); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
