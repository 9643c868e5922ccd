package term

import (
	"fmt"
	"math"

	"github.com/automoto/littlevampire/components"
	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/leaderboard"
	"github.com/automoto/littlevampire/systems"
	"github.com/automoto/littlevampire/tags"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Canvas is the part of tcell.Screen the renderer draws through
type Canvas interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	skyStyle      = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 16, 48))
	grassStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 160, 60)).Background(tcell.NewRGBColor(120, 80, 40))
	groundStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(95, 60, 30)).Background(tcell.NewRGBColor(120, 80, 40))
	starStyle     = skyStyle.Foreground(tcell.NewRGBColor(255, 220, 40)).Bold(true)
	bombStyle     = skyStyle.Foreground(tcell.NewRGBColor(200, 200, 200)).Bold(true)
	playerStyle   = skyStyle.Foreground(tcell.NewRGBColor(235, 225, 240)).Bold(true)
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	bestStyle     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	panelStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(40, 10, 10))
	selectedStyle = panelStyle.Foreground(tcell.NewRGBColor(255, 180, 50)).Bold(true)
	titleStyle    = panelStyle.Foreground(tcell.NewRGBColor(255, 60, 60)).Bold(true)
)

// Renderer maps world pixels onto terminal cells. The top row holds the HUD.
type Renderer struct {
	canvas Canvas

	// Runs shown on the game over panel, refreshed once per finished run
	runs []leaderboard.Run
}

func NewRenderer(c Canvas) *Renderer {
	return &Renderer{canvas: c}
}

// SetRuns replaces the leaderboard rows shown after a game over.
func (r *Renderer) SetRuns(runs []leaderboard.Run) {
	r.runs = runs
}

// Draw paints one frame of the world.
func (r *Renderer) Draw(e *ecs.ECS) {
	cols, rows := r.canvas.Size()
	if cols <= 0 || rows <= 1 {
		return
	}
	bounds := systems.WorldBounds(e)
	v := viewport{
		cols:   cols,
		rows:   rows - 1,
		scaleX: bounds.Width / float64(cols),
		scaleY: bounds.Height / float64(rows-1),
	}

	r.fill(0, 0, cols, rows, ' ', skyStyle)

	tags.Platform.Each(e.World, func(p *donburi.Entry) {
		o := components.Object.Get(p)
		x0, y0, x1, y1 := v.cells(o.X, o.Y, o.W, o.H)
		for y := y0; y <= y1; y++ {
			style, ch := groundStyle, '▒'
			if y == y0 {
				style, ch = grassStyle, '▀'
			}
			for x := x0; x <= x1; x++ {
				r.canvas.SetContent(x, y+1, ch, nil, style)
			}
		}
	})

	tags.Star.Each(e.World, func(s *donburi.Entry) {
		if components.Sprite.Get(s).Hidden {
			return
		}
		cx, cy := components.Object.Get(s).Center()
		x, y := v.cell(cx, cy)
		r.canvas.SetContent(x, y+1, '*', nil, starStyle)
	})

	tags.Bomb.Each(e.World, func(b *donburi.Entry) {
		cx, cy := components.Object.Get(b).Center()
		x, y := v.cell(cx, cy)
		r.canvas.SetContent(x, y+1, '●', nil, bombStyle)
	})

	tags.Player.Each(e.World, func(p *donburi.Entry) {
		o := components.Object.Get(p)
		style := playerStyle
		if tint := components.Player.Get(p).Tint; tint != nil {
			style = skyStyle.Foreground(tcell.NewRGBColor(int32(tint.R), int32(tint.G), int32(tint.B))).Bold(true)
		}
		head := 'V'
		if components.Sprite.Get(p).FlipX {
			head = 'Λ'
		}
		x0, y0, x1, y1 := v.cells(o.X, o.Y, o.W, o.H)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				ch := '█'
				if y == y0 {
					ch = head
				}
				r.canvas.SetContent(x, y+1, ch, nil, style)
			}
		}
	})

	r.drawHUD(e, cols)

	if systems.GetOrCreatePause(e).IsPaused {
		r.drawPause(e, cols, rows)
	}
	if systems.IsGameOver(e) {
		r.drawGameOver(e, cols, rows)
	}
}

func (r *Renderer) drawHUD(e *ecs.ECS, cols int) {
	r.fill(0, 0, cols, 1, ' ', tcell.StyleDefault)
	score := systems.GetScore(e)
	if score == nil {
		return
	}
	r.text(1, 0, score.Text, hudStyle)

	best := score.High
	if score.Value > best {
		best = score.Value
	}
	right := fmt.Sprintf("Wave %d  Best: %d", score.Wave+1, best)
	if systems.IsMuted() {
		right = "muted  " + right
	}
	r.text(cols-len([]rune(right))-1, 0, right, bestStyle)
}

func (r *Renderer) drawPause(e *ecs.ECS, cols, rows int) {
	pause := systems.GetOrCreatePause(e)
	lines := []string{"PAUSED", ""}
	lines = append(lines, cfg.Pause.MenuOptions...)
	lines = append(lines, "", "arrows + Enter, Esc resumes")

	selected := map[int]bool{2 + int(pause.SelectedOption): true}
	r.panel(cols, rows, lines, selected)
}

func (r *Renderer) drawGameOver(e *ecs.ECS, cols, rows int) {
	score := systems.GetScore(e)
	best := score.High
	if score.Value > best {
		best = score.Value
	}

	lines := []string{
		cfg.GameOver.Title,
		"",
		fmt.Sprintf("Score: %d", score.Value),
		fmt.Sprintf("Best: %d", best),
	}
	if len(r.runs) > 0 {
		lines = append(lines, "", "Top runs")
		for i, run := range r.runs {
			lines = append(lines, fmt.Sprintf("%d. %5d  wave %d", i+1, run.Score, run.Waves+1))
		}
	}

	lines = append(lines, "")
	first := len(lines)
	lines = append(lines, "Restart", "Quit", "", "R restarts, q quits")

	option := systems.GetOrCreateGameOver(e).SelectedOption
	selected := map[int]bool{first + int(option): true}
	r.panel(cols, rows, lines, selected)
}

// panel draws lines centred in a box. Line 0 is the title.
func (r *Renderer) panel(cols, rows int, lines []string, selected map[int]bool) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	left := (cols - width) / 2
	top := (rows - height) / 2
	r.fill(left, top, width, height, ' ', panelStyle)

	for i, l := range lines {
		style := panelStyle
		switch {
		case i == 0:
			style = titleStyle
		case selected[i]:
			style = selectedStyle
			l = "> " + l + " <"
		}
		x := left + (width-len([]rune(l)))/2
		r.text(x, top+1+i, l, style)
	}
}

func (r *Renderer) fill(x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.canvas.SetContent(col, row, ch, nil, style)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.canvas.SetContent(x+i, y, ch, nil, style)
	}
}

type viewport struct {
	cols, rows     int
	scaleX, scaleY float64
}

// cell returns the terminal cell containing world point (x, y).
func (v viewport) cell(x, y float64) (int, int) {
	cx := clampInt(int(math.Floor(x/v.scaleX)), 0, v.cols-1)
	cy := clampInt(int(math.Floor(y/v.scaleY)), 0, v.rows-1)
	return cx, cy
}

// cells returns the inclusive cell range covered by a world rectangle. Every
// rectangle covers at least one cell.
func (v viewport) cells(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0, y0 = v.cell(x, y)
	x1, y1 = v.cell(x+w-1e-6, y+h-1e-6)
	return x0, y0, max(x0, x1), max(y0, y1)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
