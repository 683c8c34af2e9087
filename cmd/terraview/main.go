//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"terraview/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatalf("terraview: %v", err)
	}

	game := app.New(session, cfg)

	ebiten.SetWindowTitle("terraview")
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
