package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// drawCentered draws s horizontally centred on the screen with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	width := screen.Bounds().Dx()
	x := (width - font.MeasureString(face, s).Ceil()) / 2
	text.Draw(screen, s, face, x, y, clr)
}

// drawRightAligned draws s so that it ends margin pixels from the right edge.
func drawRightAligned(screen *ebiten.Image, s string, face font.Face, margin, y int, clr color.Color) {
	width := screen.Bounds().Dx()
	x := width - margin - font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, x, y, clr)
}
