// Command astarviz is an interactive A* pathfinding demonstrator for the
// terminal.
//
// Left-click places the start cell, then the end cell, then walls (drag to
// paint). Right-click erases. Space runs the search, c clears the board,
// Esc or Ctrl-C quits.
//
// Usage:
//
//	astarviz [-config file.yaml] [-size N] [-delay 5ms] [-log file] [-level debug]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/astarviz/config"
	"github.com/katalvlaran/astarviz/controller"
	"github.com/katalvlaran/astarviz/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "astarviz:", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "YAML configuration file")
	size := flag.Int("size", config.DefaultGridSize, "board dimension N (N×N cells)")
	delay := flag.Duration("delay", config.DefaultStepDelay, "pause after each animation frame")
	logFile := flag.String("log", "", "write the log to this file")
	logLevel := flag.String("level", config.DefaultLogLevel, "log level")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	// flags given on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.GridSize = *size
		case "delay":
			cfg.StepDelay = *delay
		case "log":
			cfg.LogFile = *logFile
		case "level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Debugf("configuration:\n%s", spew.Sdump(cfg))

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()

	sc := tui.New(s, cfg.CellWidth, cfg.CellHeight)
	c, err := controller.New(sc, sc,
		controller.WithGridSize(cfg.GridSize),
		controller.WithRunKey(cfg.RunRune()),
		controller.WithClearKey(cfg.ClearRune()),
		controller.WithStepDelay(cfg.StepDelay),
		controller.WithLogger(log),
	)
	if err != nil {
		return err
	}
	log.WithField("size", cfg.GridSize).Info("started")

	return c.Run()
}

// newLogger builds the logger described by cfg. The terminal belongs to the
// board, so without a log file the output is discarded.
func newLogger(cfg config.Config) (*logrus.Logger, func(), error) {
	log := logrus.New()
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return log, func() { _ = f.Close() }, nil
}
