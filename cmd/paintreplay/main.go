// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command paintreplay replays a recorded editing script against a fresh
// canvas and exports the result.
//
// Usage:
//
//	paintreplay -script session.toml [-config paint.toml] [-output out.png] [-v]
//
// The output format follows the file extension: .png or .pdf.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/export"
)

func main() {
	var (
		scriptPath = flag.String("script", "", "TOML editing script (required)")
		configPath = flag.String("config", "", "TOML engine configuration")
		output     = flag.String("output", "replay.png", "output file (.png or .pdf)")
		background = flag.Bool("checkerboard", false, "draw the configured checkerboard behind the canvas")
		verbose    = flag.Bool("v", false, "log engine diagnostics to stderr")
	)
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	sc, err := loadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	s, err := paint.New(cfg, sc.Width, sc.Height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	if err := Replay(s, sc); err != nil {
		log.Fatalf("Replay failed: %v", err)
	}

	img := s.Flatten()
	if *background {
		cb := s.Config().BgCheckerboard
		img = export.OnBackground(img, cb.Render(sc.Width, sc.Height))
	}
	if err := save(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Replayed %d ops, saved to %s (%dx%d, %d undoable)\n",
		len(sc.Ops), *output, s.Size().Width, s.Size().Height, s.HistoryLen())
}

func loadConfig(path string) (paint.Config, error) {
	if path == "" {
		return paint.Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return paint.Config{}, err
	}
	defer f.Close()
	return paint.LoadConfig(f)
}

func loadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadScript(f)
}

func save(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		err = export.PDF(f, img, export.PDFOptions{Title: filepath.Base(path)})
	default:
		err = export.PNG(f, img)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
