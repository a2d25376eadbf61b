// Package shape переводит силуэты корабля и врагов в экранные точки.
package shape

import (
	"math"

	"go-tempest/internal/config"
	"go-tempest/internal/defs"
	"go-tempest/internal/entity"
	"go-tempest/pkg/web"
)

// laneFrame возвращает базис линии: forward смотрит от центра наружу,
// side — перпендикуляр к нему.
func laneFrame(g web.Geometry, lane int) (forward, side web.Point) {
	if lane < 0 || lane >= g.LaneCount() {
		return web.Point{X: 1}, web.Point{Y: 1}
	}
	forward = g.Direction(lane).Scale(-1)
	side = web.Point{X: -forward.Y, Y: forward.X}
	return forward, side
}

// Enemy переводит силуэт типа врага в экранные точки с учётом
// вращения и пульсации по возрасту врага.
func Enemy(g web.Geometry, e entity.EnemyView) []web.Point {
	def, ok := defs.EnemyLibrary[e.Type]
	if !ok {
		def = defs.EnemyLibrary[defs.EnemyFlipper]
	}
	forward, side := laneFrame(g, e.Lane)

	spin := 2 * math.Pi * def.SpinRate * e.Age
	sin, cos := math.Sincos(spin)
	scale := 1.0
	if def.PulseHz > 0 {
		scale = 1 + 0.15*math.Sin(2*math.Pi*def.PulseHz*e.Age)
	}

	out := make([]web.Point, len(def.Outline))
	for i, v := range def.Outline {
		f := (v.Forward*cos - v.Side*sin) * scale
		s := (v.Forward*sin + v.Side*cos) * scale
		out[i] = e.Position.Add(forward.Scale(f)).Add(side.Scale(s))
	}
	return out
}

// Ship — U-образный корабль игрока на внешней точке его линии,
// рожки смотрят наружу.
func Ship(g web.Geometry, lane int, pos web.Point) []web.Point {
	forward, side := laneFrame(g, lane)
	half := side.Scale(config.ShipBaseWidth / 2)
	arm := forward.Scale(config.ShipArmLength)
	notch := side.Scale(config.ShipArmWidth)

	baseLeft := pos.Sub(half)
	baseRight := pos.Add(half)
	return []web.Point{
		baseLeft,
		baseLeft.Add(arm),
		baseLeft.Add(arm).Add(notch),
		baseRight.Add(arm).Sub(notch),
		baseRight.Add(arm),
		baseRight,
	}
}
