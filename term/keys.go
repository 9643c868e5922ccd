package term

import (
	"time"

	cfg "github.com/automoto/littlevampire/config"
	"github.com/gdamore/tcell/v2"
)

const (
	// Terminals report presses and auto-repeats but never releases, so an
	// action stays held for a while after its last event. The first press is
	// held long enough to bridge the keyboard's initial repeat delay.
	firstPressHold = 550 * time.Millisecond
	repeatHold     = 120 * time.Millisecond
)

// Keys turns terminal key events into held actions
type Keys struct {
	until [cfg.ActionCount]time.Time
}

func NewKeys() *Keys {
	return &Keys{}
}

// Press marks action as held from now.
func (k *Keys) Press(action cfg.ActionID, now time.Time) {
	if action <= cfg.ActionNone || action >= cfg.ActionCount {
		return
	}
	hold := repeatHold
	if !now.Before(k.until[action]) {
		hold = firstPressHold
	}
	k.until[action] = now.Add(hold)
}

// Release forgets every held action.
func (k *Keys) Release() {
	k.until = [cfg.ActionCount]time.Time{}
}

// Snapshot reports which actions count as held at now.
func (k *Keys) Snapshot(now time.Time) [cfg.ActionCount]bool {
	var pressed [cfg.ActionCount]bool
	for i, until := range k.until {
		pressed[i] = now.Before(until)
	}
	return pressed
}

// Actions maps a key event to the actions it triggers. Up and Enter double
// as menu keys so the pause and game over panels work from the keyboard.
func Actions(ev *tcell.EventKey) []cfg.ActionID {
	switch ev.Key() {
	case tcell.KeyLeft:
		return []cfg.ActionID{cfg.ActionMoveLeft}
	case tcell.KeyRight:
		return []cfg.ActionID{cfg.ActionMoveRight}
	case tcell.KeyUp:
		return []cfg.ActionID{cfg.ActionJump, cfg.ActionMenuUp}
	case tcell.KeyDown:
		return []cfg.ActionID{cfg.ActionMenuDown}
	case tcell.KeyEnter:
		return []cfg.ActionID{cfg.ActionMenuSelect}
	case tcell.KeyEscape:
		return []cfg.ActionID{cfg.ActionPause}
	case tcell.KeyF3:
		return []cfg.ActionID{cfg.ActionDebug}
	case tcell.KeyRune:
		return runeActions(ev.Rune())
	}
	return nil
}

func runeActions(r rune) []cfg.ActionID {
	switch r {
	case 'a', 'A':
		return []cfg.ActionID{cfg.ActionMoveLeft}
	case 'd', 'D':
		return []cfg.ActionID{cfg.ActionMoveRight}
	case 'w', 'W', ' ':
		return []cfg.ActionID{cfg.ActionJump, cfg.ActionMenuUp}
	case 's', 'S':
		return []cfg.ActionID{cfg.ActionMenuDown}
	case 'r', 'R':
		return []cfg.ActionID{cfg.ActionRestart}
	case 'p', 'P':
		return []cfg.ActionID{cfg.ActionPause}
	case 'm', 'M':
		return []cfg.ActionID{cfg.ActionMute}
	}
	return nil
}

// IsQuit reports whether the event should end the program.
func IsQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')
}
