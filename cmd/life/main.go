//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	rows, cols := cfg.Grid()
	log.Printf("grid %dx%d at scale %d, seed %d", rows, cols, cfg.Scale, cfg.Seed)

	game := app.New(cfg)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cols*cfg.Scale, rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
