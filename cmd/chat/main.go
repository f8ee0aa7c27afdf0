package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"emotiai/config"
	"emotiai/internal/analysis/fallback"
	"emotiai/internal/analysis/upstream"
	"emotiai/internal/analysis/usecase"
	"emotiai/pkg/log"
)

const defaultContextTurns = 6

type chatConfig struct {
	ConfigPath   string
	ContextTurns int
	ShowAnalysis bool
}

func (c chatConfig) Validate() error {
	if c.ContextTurns < 0 {
		return errors.New("-turns must not be negative")
	}
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) (chatConfig, error) {
	var cfg chatConfig
	fs.StringVar(&cfg.ConfigPath, "config", "", "path to config.yaml (default: search ./config, ., /etc/app/)")
	fs.IntVar(&cfg.ContextTurns, "turns", defaultContextTurns, "number of previous turns sent as context (0 sends all)")
	fs.BoolVar(&cfg.ShowAnalysis, "analysis", false, "print detected emotion and sentiment for every message")
	if err := fs.Parse(args); err != nil {
		return chatConfig{}, err
	}
	return cfg, nil
}

func main() {
	chatCfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := chatCfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	cfg, err := config.LoadFile(chatCfg.ConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(2)
	}

	// Logs share stdout with the replies, so only errors are printed.
	logger := log.Init(log.ZapConfig{
		Level:        "error",
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapters, err := upstream.New(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	estimator := fallback.New(
		fallback.WithRand(fallback.NewRand(cfg.Fallback.Seed)),
		fallback.WithRandomBaseline(cfg.Fallback.LegacyRandomBaseline),
	)

	s := newSession(usecase.New(logger, adapters, estimator), chatCfg)
	if err := s.run(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
