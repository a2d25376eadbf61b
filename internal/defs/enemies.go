// internal/defs/enemies.go
package defs

import (
	"image/color"
	"math"
)

// Vertex — точка силуэта в локальных координатах врага:
// Forward — вдоль линии к игроку, Side — поперёк.
type Vertex struct {
	Forward, Side float64
}

// EnemyDefinition holds the presentation data for a specific type of enemy.
type EnemyDefinition struct {
	Name     string
	Color    color.RGBA
	Glyph    rune     // символ для терминальной версии
	Outline  []Vertex // замкнутый многоугольник
	PulseHz  float64  // 0 — без пульсации
	SpinRate float64  // оборотов в секунду, 0 — без вращения
}

// EnemyLibrary — все типы врагов.
var EnemyLibrary = map[EnemyType]EnemyDefinition{
	EnemyFlipper: {
		Name:  "Flipper",
		Color: color.RGBA{255, 255, 0, 255},
		Glyph: 'X',
		Outline: []Vertex{
			{Forward: 12, Side: 0},
			{Forward: -6, Side: 8},
			{Forward: -6, Side: 0},
			{Forward: -6, Side: -8},
		},
		SpinRate: 0.5,
	},
	EnemyTanker: {
		Name:  "Tanker",
		Color: color.RGBA{255, 0, 255, 255},
		Glyph: 'T',
		Outline: []Vertex{
			{Forward: 12, Side: 0},
			{Forward: 0, Side: 12},
			{Forward: -12, Side: 0},
			{Forward: 0, Side: -12},
		},
	},
	EnemySpiker: {
		Name:    "Spiker",
		Color:   color.RGBA{0, 255, 255, 255},
		Glyph:   '*',
		Outline: starOutline(8, 10, 5),
	},
	EnemyFuseball: {
		Name:     "Fuseball",
		Color:    color.RGBA{255, 165, 0, 255},
		Glyph:    'o',
		Outline:  starOutline(8, 8, 3),
		SpinRate: 1,
	},
	EnemyPulsar: {
		Name:    "Pulsar",
		Color:   color.RGBA{0, 255, 0, 255},
		Glyph:   '~',
		Outline: starOutline(8, 12, 8),
		PulseHz: 1,
	},
}

// starOutline строит звезду из points вершин, чередуя внешний и внутренний радиус.
func starOutline(points int, outer, inner float64) []Vertex {
	out := make([]Vertex, 0, points)
	for i := 0; i < points; i++ {
		angle := float64(i) * 2 * math.Pi / float64(points)
		r := outer
		if i%2 == 1 {
			r = inner
		}
		out = append(out, Vertex{Forward: r * math.Cos(angle), Side: r * math.Sin(angle)})
	}
	return out
}
