package term

import (
	"testing"
	"time"

	cfg "github.com/automoto/littlevampire/config"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeysHoldWindow(t *testing.T) {
	k := NewKeys()
	t0 := time.Unix(1000, 0)

	k.Press(cfg.ActionMoveLeft, t0)
	assert.True(t, k.Snapshot(t0)[cfg.ActionMoveLeft])
	assert.True(t, k.Snapshot(t0.Add(firstPressHold-time.Millisecond))[cfg.ActionMoveLeft])
	assert.False(t, k.Snapshot(t0.Add(firstPressHold))[cfg.ActionMoveLeft])
	assert.False(t, k.Snapshot(t0)[cfg.ActionMoveRight])
}

func TestKeysRepeatExtendsShortly(t *testing.T) {
	k := NewKeys()
	t0 := time.Unix(1000, 0)

	k.Press(cfg.ActionJump, t0)
	repeat := t0.Add(500 * time.Millisecond)
	k.Press(cfg.ActionJump, repeat)

	assert.True(t, k.Snapshot(repeat.Add(repeatHold-time.Millisecond))[cfg.ActionJump])
	assert.False(t, k.Snapshot(repeat.Add(repeatHold))[cfg.ActionJump])
}

func TestKeysRelease(t *testing.T) {
	k := NewKeys()
	t0 := time.Unix(1000, 0)
	k.Press(cfg.ActionMoveRight, t0)
	k.Press(cfg.ActionCount, t0)

	k.Release()

	assert.Equal(t, [cfg.ActionCount]bool{}, k.Snapshot(t0))
}

func TestActions(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []cfg.ActionID
	}{
		{name: "left arrow", ev: tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), want: []cfg.ActionID{cfg.ActionMoveLeft}},
		{name: "up arrow", ev: tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), want: []cfg.ActionID{cfg.ActionJump, cfg.ActionMenuUp}},
		{name: "enter", ev: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), want: []cfg.ActionID{cfg.ActionMenuSelect}},
		{name: "r", ev: tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), want: []cfg.ActionID{cfg.ActionRestart}},
		{name: "unbound", ev: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Actions(tt.ev))
		})
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
}
