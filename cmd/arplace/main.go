package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"arplace/internal/ar"
	"arplace/internal/config"
	"arplace/internal/game"
	"arplace/internal/logging"

	"go.uber.org/zap"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "arplace: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arplace: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	room, err := ar.LoadRoom(cfg.Room.Path)
	if err != nil {
		log.Fatal("load room", zap.Error(err))
	}
	log.Info("starting",
		zap.String("room", cfg.Room.Path),
		zap.Int("planes", len(room.Planes)),
		zap.Bool("updateOrientationOnDrag", cfg.Placement.UpdateOrientationOnDrag))

	game.New(cfg, room, log).Run()
}
