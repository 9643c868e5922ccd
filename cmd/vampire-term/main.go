package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/log"
	"github.com/automoto/littlevampire/systems"
	"github.com/automoto/littlevampire/term"
	"github.com/gdamore/tcell/v2"
)

func main() {
	logFile := flag.String("log-file", "vampire-term.log", "where logs go while the terminal is in use")
	flag.Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "random seed, 0 seeds from the clock")
	flag.StringVar(&config.Persistence.LogLevel, "log-level", config.Persistence.LogLevel, "error, warn, info, debug or trace")
	flag.StringVar(&config.Persistence.LeaderboardDB, "scores-db", config.Persistence.LeaderboardDB, "SQLite file for run history, empty keeps it in memory")
	flag.Parse()

	if err := run(*logFile); err != nil {
		fmt.Fprintf(os.Stderr, "vampire-term: %v\n", err)
		os.Exit(1)
	}
}

func run(logPath string) error {
	level, err := log.ParseLogLevel(config.Persistence.LogLevel)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)
	log.SetLevel(level)
	log.SetFrontend("terminal")

	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettingsGlobal(saved)
		}
	}

	repo := systems.OpenLeaderboard(config.Persistence.LeaderboardDB)
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			log.Warn("closing leaderboard: %v", err)
		}
	}()

	lvl, err := assets.NewLevelLoader().LoadLevel(assets.DefaultLevel)
	if err != nil {
		return err
	}

	sound := term.NewSound()
	if err := sound.Initialize(); err != nil {
		log.Warn("no audio device, playing silently: %v", err)
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term.NewGame(screen, lvl, config.Debug.Seed, sound).Run(ctx)
	log.Info("terminal session ended")
	return nil
}
