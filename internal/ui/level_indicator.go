// internal/ui/level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tempest/internal/config"
)

// LevelIndicator показывает прогресс нормы убийств и пройденные уровни.
type LevelIndicator struct {
	X, Y float32
}

const (
	killBarWidth    = 240
	killBarHeight   = 12
	levelRectWidth  = 16
	levelRectHeight = 12
	levelRectGap    = 8
	borderWidth     = 1
)

var borderColor = color.White

// NewLevelIndicator создает новый индикатор уровня.
func NewLevelIndicator(x, y float32) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор. levels — длина каталога, level — текущий
// индекс, kills и quota — счётчик убийств текущего уровня.
func (i *LevelIndicator) Draw(screen *ebiten.Image, level, levels, kills, quota int) {
	// 1. Полоса нормы убийств
	vector.StrokeRect(screen, i.X, i.Y, killBarWidth, killBarHeight, borderWidth, borderColor, true)

	fillRatio := 0.0
	if quota > 0 {
		fillRatio = float64(kills) / float64(quota)
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(killBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, killBarHeight-borderWidth*2, config.KillBarFillColor, true)
	}

	// 2. По прямоугольнику на уровень, пройденные и текущий закрашены
	rectY := i.Y + killBarHeight + 8
	for j := 0; j < levels; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j <= level {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, config.KillBarFillColor, true)
		}
	}
}
