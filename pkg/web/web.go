// Package web строит "паутину" уровня: набор радиальных линий между
// внутренним и внешним кольцом. Линия i задаётся парой точек Inner[i], Outer[i].
package web

import (
	"errors"
	"fmt"
	"math"

	"go-tempest/internal/defs"
	"go-tempest/pkg/utils"
)

var (
	ErrNoLanes  = errors.New("lane count must be positive")
	ErrBadRadii = errors.New("radii must satisfy 0 < inner < outer")
)

// Point — точка на экране в пикселях.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Len — длина вектора.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist — евклидово расстояние между точками.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }

// Lerp интерполирует от p к q; t=0 даёт p, t=1 даёт q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{utils.Lerp(p.X, q.X, t), utils.Lerp(p.Y, q.Y, t)}
}

// Geometry — опорные точки всех линий уровня, выровненные по индексу.
type Geometry struct {
	Inner []Point
	Outer []Point
}

func (g Geometry) LaneCount() int { return len(g.Inner) }

// Lane возвращает концы линии i.
func (g Geometry) Lane(i int) (inner, outer Point) {
	return g.Inner[i], g.Outer[i]
}

// Direction — единичный вектор от внешней точки линии к внутренней.
// Для вырожденной линии возвращает нулевой вектор.
func (g Geometry) Direction(i int) Point {
	d := g.Inner[i].Sub(g.Outer[i])
	l := d.Len()
	if l == 0 {
		return Point{}
	}
	return d.Scale(1 / l)
}

// Build вычисляет паутину для уровня с центром в center.
// Форма без собственного правила строится как круг.
func Build(cfg defs.LevelConfig, center Point) (Geometry, error) {
	if cfg.LaneCount <= 0 {
		return Geometry{}, fmt.Errorf("build web: %w (got %d)", ErrNoLanes, cfg.LaneCount)
	}
	if cfg.InnerRadius <= 0 || cfg.OuterRadius <= cfg.InnerRadius {
		return Geometry{}, fmt.Errorf("build web: %w (inner %.2f, outer %.2f)", ErrBadRadii, cfg.InnerRadius, cfg.OuterRadius)
	}

	layout := layoutFor(cfg.Shape)
	g := Geometry{
		Inner: make([]Point, cfg.LaneCount),
		Outer: make([]Point, cfg.LaneCount),
	}
	for i := 0; i < cfg.LaneCount; i++ {
		dir, factor := layout(i, cfg.LaneCount)
		g.Inner[i] = center.Add(dir.Scale(cfg.InnerRadius * factor))
		g.Outer[i] = center.Add(dir.Scale(cfg.OuterRadius * factor))
	}
	return g, nil
}

// MustBuild как Build, но паникует на некорректном уровне.
// Используется там, где уровень берётся из проверенного каталога.
func MustBuild(cfg defs.LevelConfig, center Point) Geometry {
	g, err := Build(cfg, center)
	if err != nil {
		panic(err)
	}
	return g
}
