package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every scene.
const Default ecs.LayerID = 0

// TPS is the fixed update rate. All speeds below are expressed per tick.
const TPS = 60

// perTick converts a per-second speed into a per-tick speed.
func perTick(v float64) float64 {
	return v / TPS
}

// perTick2 converts a per-second-squared acceleration into a per-tick one.
func perTick2(a float64) float64 {
	return a / (TPS * TPS)
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64

	// Rebounds slower than this settle to rest instead of bouncing forever
	RestThreshold float64

	// Broadphase grid cell size for the collision space
	CellSize int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	RunSpeed  float64
	JumpSpeed float64
	Bounce    float64

	SpawnX float64 // centre
	SpawnY float64 // centre

	CollisionWidth  int
	CollisionHeight int

	HitTint color.RGBA
}

// StarConfig contains collectible configuration values
type StarConfig struct {
	Count     int
	FirstX    float64 // centre of the first star
	StepX     float64
	SpawnY    float64 // centre
	BounceMin float64
	BounceMax float64
	Points    int

	Width  int
	Height int

	TwinkleScale    float64
	TwinkleDuration float32 // seconds per half cycle
}

// BombConfig contains hazard configuration values
type BombConfig struct {
	SpawnY        float64 // centre
	Scale         float64
	BaseSize      int
	Bounce        float64
	InitialSpeedY float64

	// Horizontal launch speed in whole px/s, both ends included
	MinSpeedX int
	MaxSpeedX int

	// Spawn ranges for new bombs, chosen opposite to the player's half. Spawn
	// x is a whole pixel with both ends of the half included.
	SplitX int
}

// HUDConfig contains score overlay configuration values
type HUDConfig struct {
	ScoreX     float64
	ScoreY     float64
	FontSize   float64
	ScoreColor color.RGBA
	HighColor  color.RGBA
	Margin     float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// GameOverConfig contains game over panel configuration values
type GameOverConfig struct {
	OverlayColor   color.RGBA
	PanelColor     color.RGBA
	TitleColor     color.RGBA
	TextColor      color.RGBA
	Title          string
	LeaderboardTop int
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	BombIntensity float64 // pixels
	BombDuration  int     // frames
}

// FlashConfig contains sprite flash effect configuration
type FlashConfig struct {
	HitFrames int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool  // Skip menu and go directly to game
	ShowHitboxes bool  // Draw collision boxes
	Seed         int64 // 0 = seed from clock
}

// PersistenceConfig names the on-disk stores
type PersistenceConfig struct {
	AppName       string
	LeaderboardDB string // empty = in-memory leaderboard
	LogLevel      string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Star StarConfig
var Bomb BombConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var ScreenShake ScreenShakeConfig
var Flash FlashConfig
var Debug DebugConfig
var Persistence PersistenceConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Little Vampire's Adventure",
	}

	Physics = PhysicsConfig{
		Gravity:       perTick2(300),
		MaxFallSpeed:  perTick(900),
		RestThreshold: perTick(30),
		CellSize:      16,
	}

	Player = PlayerConfig{
		RunSpeed:  perTick(180),
		JumpSpeed: perTick(340),
		Bounce:    0.2,

		SpawnX: 100,
		SpawnY: 450,

		CollisionWidth:  32,
		CollisionHeight: 48,

		HitTint: Red,
	}

	Star = StarConfig{
		Count:     12,
		FirstX:    12,
		StepX:     70,
		SpawnY:    0,
		BounceMin: 0.4,
		BounceMax: 0.8,
		Points:    10,

		Width:  24,
		Height: 22,

		TwinkleScale:    1.15,
		TwinkleDuration: 0.6,
	}

	Bomb = BombConfig{
		SpawnY:        16,
		Scale:         2,
		BaseSize:      14,
		Bounce:        1,
		InitialSpeedY: perTick(10),
		MinSpeedX:     -100,
		MaxSpeedX:     100,
		SplitX:        400,
	}

	HUD = HUDConfig{
		ScoreX:     16,
		ScoreY:     16,
		FontSize:   32,
		ScoreColor: White,
		HighColor:  Yellow,
		Margin:     16,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuStartY:        240,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            180,
		MenuStartY:        260,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	GameOver = GameOverConfig{
		OverlayColor:   BlackOverlay,
		PanelColor:     color.RGBA{R: 40, G: 10, B: 10, A: 230},
		TitleColor:     LightRed,
		TextColor:      White,
		Title:          "GAME OVER",
		LeaderboardTop: 5,
	}

	ScreenShake = ScreenShakeConfig{
		BombIntensity: 6,
		BombDuration:  20,
	}

	Flash = FlashConfig{
		HitFrames: 12,
	}

	Debug = DebugConfig{
		SkipMenu:     false,
		ShowHitboxes: false,
	}

	Persistence = PersistenceConfig{
		AppName:  "littlevampire",
		LogLevel: "info",
	}
}
