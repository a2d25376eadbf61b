// component/movement.go
package component

import "go-tempest/pkg/web"

// Position — компонент позиции в экранных координатах.
type Position = web.Point

// LaneMotion — положение сущности на линии паутины.
// Progress: 0 — внутреннее кольцо, 1 — внешнее.
type LaneMotion struct {
	Lane     int
	Progress float64
}
