// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tempest/internal/config"
)

// StateIndicator — кружок в углу экрана, цвет которого показывает фазу
// игры. При смене фазы он коротко вспухает.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	LastChange time.Time
	lastColor  color.RGBA
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	if stateColor != i.lastColor {
		i.lastColor = stateColor
		i.LastChange = time.Now()
	}
	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, config.IndicatorStroke, true)
}
