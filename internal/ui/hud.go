// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-tempest/internal/config"
	"go-tempest/internal/entity"
)

const hudLineHeight = 18

// HUD выводит текстовую сводку: уровень, очки, заряды суперзаппера.
type HUD struct {
	X, Y     int
	fontFace font.Face
}

func NewHUD(x, y int, fontFace font.Face) *HUD {
	return &HUD{X: x, Y: y, fontFace: fontFace}
}

func (h *HUD) Draw(screen *ebiten.Image, snap entity.Snapshot) {
	lines := []string{
		fmt.Sprintf("Level %d  %s  %s", snap.Level+1, snap.Config.Shape, snap.Config.EnemyType),
		fmt.Sprintf("Score %d", snap.Player.Score),
		fmt.Sprintf("Kills %d/%d", snap.Kills, snap.Config.KillQuota),
		fmt.Sprintf("Zap %d", snap.Player.SuperzapperCharges),
	}
	if snap.IsLastLevel() {
		lines = append(lines, "Final level")
	}
	for i, line := range lines {
		text.Draw(screen, line, h.fontFace, h.X, h.Y+i*hudLineHeight, config.TextLightColor)
	}

	if snap.GameOver {
		h.DrawCentered(screen, "GAME OVER", config.GameOverColor)
	}
}

// DrawCentered пишет строку по центру экрана.
func (h *HUD) DrawCentered(screen *ebiten.Image, msg string, clr color.Color) {
	bounds := text.BoundString(h.fontFace, msg)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := config.ScreenHeight/2 - bounds.Dy()/2
	text.Draw(screen, msg, h.fontFace, x, y, clr)
}
