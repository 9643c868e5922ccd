package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/leaderboard"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI is the panel shown over the frozen world when a bomb hits
type GameOverUI struct {
	UI *ebitenui.UI

	OnRestart func()
	OnMenu    func()

	scoreLabel *widget.Label
	bestLabel  *widget.Label
	runLabels  []*widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewGameOverUI builds the panel. The callbacks run on button clicks.
func NewGameOverUI(onRestart, onMenu func()) *GameOverUI {
	g := &GameOverUI{
		OnRestart: onRestart,
		OnMenu:    onMenu,
	}

	g.loadFonts()
	g.buildUI()

	return g
}

func (g *GameOverUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	g.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	g.normalFace = &text.GoTextFace{Source: fontSource, Size: 20}
	g.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (g *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.GameOver.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(360, 0),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.GameOver.Title, &g.titleFace, &widget.LabelColor{
			Idle: cfg.GameOver.TitleColor,
		}),
	))

	g.scoreLabel = g.newLabel(&g.normalFace, cfg.GameOver.TextColor)
	panel.AddChild(g.scoreLabel)
	g.bestLabel = g.newLabel(&g.normalFace, cfg.HUD.HighColor)
	panel.AddChild(g.bestLabel)

	panel.AddChild(g.newLabelText("Top runs", &g.smallFace, cfg.GameOver.TitleColor))
	for i := 0; i < cfg.GameOver.LeaderboardTop; i++ {
		l := g.newLabel(&g.smallFace, cfg.GameOver.TextColor)
		g.runLabels = append(g.runLabels, l)
		panel.AddChild(l)
	}

	panel.AddChild(g.buildButtons())
	panel.AddChild(g.newLabelText("Enter/R: Restart   Down+Enter: Main Menu", &g.smallFace, color.RGBA{180, 180, 180, 255}))

	rootContainer.AddChild(panel)

	g.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (g *GameOverUI) buildButtons() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)

	row.AddChild(g.newButton("Restart", func() {
		if g.OnRestart != nil {
			g.OnRestart()
		}
	}))
	row.AddChild(g.newButton("Main Menu", func() {
		if g.OnMenu != nil {
			g.OnMenu()
		}
	}))
	return row
}

func (g *GameOverUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 36),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &g.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (g *GameOverUI) newLabel(face *text.Face, clr color.Color) *widget.Label {
	return g.newLabelText("", face, clr)
}

func (g *GameOverUI) newLabelText(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle: clr,
		}),
	)
}

// Refresh fills in the run summary and the leaderboard rows.
func (g *GameOverUI) Refresh(score, best int, runs []leaderboard.Run) {
	g.scoreLabel.Label = fmt.Sprintf("Score: %d", score)
	g.bestLabel.Label = fmt.Sprintf("Best: %d", best)

	for i, l := range g.runLabels {
		if i < len(runs) {
			l.Label = FormatRun(i+1, runs[i])
		} else {
			l.Label = ""
		}
	}
}

// FormatRun renders one leaderboard row.
func FormatRun(rank int, run leaderboard.Run) string {
	return fmt.Sprintf("%d. %5d  wave %d  %s", rank, run.Score, run.Waves+1, run.PlayedAt.Format("2006-01-02 15:04"))
}

// Update calls the UI's Update method
func (g *GameOverUI) Update() {
	g.UI.Update()
}

// Draw renders the panel
func (g *GameOverUI) Draw(screen *ebiten.Image) {
	g.UI.Draw(screen)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{90, 30, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{120, 45, 55, 255})
	pressed := image.NewNineSliceColor(color.RGBA{60, 20, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
