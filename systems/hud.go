package systems

import (
	"fmt"

	cfg "github.com/automoto/littlevampire/config"
	"github.com/automoto/littlevampire/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the score in the top-left corner and the best score in the
// top-right. Both stay fixed while the camera shakes.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	score := GetScore(ecs)
	if score == nil {
		return
	}

	face := fonts.HUD.Get()
	ascent := face.Metrics().Ascent.Ceil()
	y := int(cfg.HUD.ScoreY) + ascent

	text.Draw(screen, score.Text, face, int(cfg.HUD.ScoreX), y, cfg.HUD.ScoreColor)

	best := score.High
	if score.Value > best {
		best = score.Value
	}
	small := fonts.Bold.Get()
	drawRightAligned(screen, fmt.Sprintf("Best: %d", best), small, int(cfg.HUD.Margin),
		int(cfg.HUD.ScoreY)+small.Metrics().Ascent.Ceil(), cfg.HUD.HighColor)

	if score.Wave > 0 {
		label := fmt.Sprintf("Wave %d", score.Wave+1)
		drawRightAligned(screen, label, small, int(cfg.HUD.Margin),
			int(cfg.HUD.ScoreY)+2*lineHeight(small), cfg.HUD.ScoreColor)
	}
}

func lineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}
