package systems

import (
	"fmt"

	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// quit is called for Exit and Back.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}, quit func()) ecs.System {
	started := false
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := GetOrCreateInput(e)

		// A key still held from the previous scene reads as a fresh press
		if !started {
			started = true
			return
		}

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuPlay:
				sceneChanger.ChangeScene(createWorldScene())
			case components.MainMenuMute:
				ToggleMute(e)
			case components.MainMenuExit:
				quit()
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			quit()
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	settings := GetOrCreateSettings(e)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

	drawCentered(screen, cfg.C.Title, fonts.Title.Get(), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	face := fonts.Bold.Get()
	for i, option := range menu.Options {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, MenuOptionLabel(option, settings.Muted), face, int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	if high := LoadHighScore(); high > 0 {
		drawCentered(screen, fmt.Sprintf("Best: %d", high), fonts.Regular.Get(), int(height)-48, cfg.HUD.HighColor)
	}

	input := GetOrCreateInput(e)
	drawCentered(screen, menuHint(input.LastInputMethod), fonts.Small.Get(), int(height)-12, cfg.Menu.TextColorNormal)
}

func menuHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select   M: Mute"
}

// MenuOptionLabel returns the display text for a menu option
func MenuOptionLabel(option components.MainMenuOption, muted bool) string {
	switch option {
	case components.MainMenuPlay:
		return "Play"
	case components.MainMenuMute:
		if muted {
			return "Sound: Off"
		}
		return "Sound: On"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Options: []components.MainMenuOption{
				components.MainMenuPlay,
				components.MainMenuMute,
				components.MainMenuExit,
			},
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
