package term

import (
	"strings"
	"testing"

	"github.com/automoto/littlevampire/assets"
	"github.com/automoto/littlevampire/leaderboard"
	"github.com/automoto/littlevampire/systems"
	"github.com/automoto/littlevampire/tags"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeCanvas struct {
	w, h  int
	cells [][]rune
}

func newFakeCanvas(w, h int) *fakeCanvas {
	c := &fakeCanvas{w: w, h: h, cells: make([][]rune, h)}
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", w))
	}
	return c
}

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func (c *fakeCanvas) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = primary
}

func (c *fakeCanvas) row(y int) string { return string(c.cells[y]) }

func (c *fakeCanvas) String() string {
	rows := make([]string, c.h)
	for y := range rows {
		rows[y] = c.row(y)
	}
	return strings.Join(rows, "\n")
}

func (c *fakeCanvas) count(r rune) int {
	return strings.Count(c.String(), string(r))
}

func newRenderWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	level, err := assets.NewLevelLoader().LoadLevel(assets.DefaultLevel)
	require.NoError(t, err)
	systems.SetLeaderboard(leaderboard.NewMemoryRepository())

	e := ecs.NewECS(donburi.NewWorld())
	systems.NewWorld(e, level, 1)
	return e
}

func TestRenderDrawsHUDAndWorld(t *testing.T) {
	e := newRenderWorld(t)
	canvas := newFakeCanvas(100, 40)

	NewRenderer(canvas).Draw(e)

	assert.Contains(t, canvas.row(0), "Score: 0")
	assert.Contains(t, canvas.row(0), "Wave 1")
	assert.Positive(t, canvas.count('▀'), "platform tops")
	assert.Positive(t, canvas.count('*'), "stars")
	assert.Positive(t, canvas.count('●'), "bombs")
	assert.Positive(t, canvas.count('V'), "player head")
}

func TestRenderSkipsCollectedStars(t *testing.T) {
	e := newRenderWorld(t)
	canvas := newFakeCanvas(100, 40)
	r := NewRenderer(canvas)

	r.Draw(e)
	before := canvas.count('*')

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	first, ok := tags.Star.First(e.World)
	require.True(t, ok)
	systems.CollectStar(e, player, first)

	r.Draw(e)
	assert.Equal(t, before-1, canvas.count('*'))
	assert.Contains(t, canvas.row(0), "Score: 10")
}

func TestRenderPauseOverlay(t *testing.T) {
	e := newRenderWorld(t)
	systems.GetOrCreatePause(e).IsPaused = true
	canvas := newFakeCanvas(100, 40)

	NewRenderer(canvas).Draw(e)

	out := canvas.String()
	assert.Contains(t, out, "PAUSED")
	assert.Contains(t, out, "> Resume <")
	assert.Contains(t, out, "Restart")
}

func TestRenderGameOverShowsRuns(t *testing.T) {
	e := newRenderWorld(t)
	systems.GetGameState(e).Over = true
	systems.GetScore(e).Value = 70
	canvas := newFakeCanvas(100, 40)
	r := NewRenderer(canvas)
	r.SetRuns([]leaderboard.Run{
		{ID: uuid.New(), Score: 120, Waves: 1},
		{ID: uuid.New(), Score: 70},
	})

	r.Draw(e)

	out := canvas.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Score: 70")
	assert.Contains(t, out, "1.   120  wave 2")
	assert.Contains(t, out, "2.    70  wave 1")
	assert.Contains(t, out, "> Restart <")
}

func TestRenderTinySurfaceIsSafe(t *testing.T) {
	e := newRenderWorld(t)
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		canvas := newFakeCanvas(size[0], size[1])
		assert.NotPanics(t, func() { NewRenderer(canvas).Draw(e) })
	}
}

func TestViewportCells(t *testing.T) {
	v := viewport{cols: 80, rows: 30, scaleX: 10, scaleY: 20}

	x, y := v.cell(-5, 10000)
	assert.Equal(t, 0, x)
	assert.Equal(t, 29, y)

	x0, y0, x1, y1 := v.cells(100, 40, 20, 20)
	assert.Equal(t, []int{10, 2, 11, 2}, []int{x0, y0, x1, y1})

	// Smaller than a cell still covers one
	x0, y0, x1, y1 = v.cells(101, 41, 2, 2)
	assert.Equal(t, x0, x1)
	assert.Equal(t, y0, y1)
}
