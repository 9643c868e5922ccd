package main

import (
	"context"
	"errors"
	"flag"
	"image"

	"github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/fonts"
	"github.com/automoto/littlevampire/log"
	"github.com/automoto/littlevampire/scenes"
	"github.com/automoto/littlevampire/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start straight in the level")
	flag.BoolVar(&config.Debug.ShowHitboxes, "hitboxes", config.Debug.ShowHitboxes, "draw collision boxes")
	flag.Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "random seed, 0 seeds from the clock")
	flag.StringVar(&config.Persistence.LogLevel, "log-level", config.Persistence.LogLevel, "error, warn, info, debug or trace")
	flag.StringVar(&config.Persistence.LeaderboardDB, "scores-db", config.Persistence.LeaderboardDB, "SQLite file for run history, empty keeps it in memory")
	flag.Parse()

	level, err := log.ParseLogLevel(config.Persistence.LogLevel)
	if err != nil {
		log.Fatal("%v", err)
	}
	log.SetLevel(level)
	log.SetFrontend("window")

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatal("could not load fonts: %v", err)
	}

	// Persistence failures only cost saved settings; the game still runs
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

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game stopped: %v", err)
	}
}
