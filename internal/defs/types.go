// internal/defs/types.go
package defs

// Shape — форма паутины линий на уровне.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeStar
	ShapeSpiral
	ShapePentagon
	ShapeOctagon
	ShapePlus
	ShapeTriangle
	ShapeCross
)

var shapeNames = [...]string{
	ShapeCircle:   "Circle",
	ShapeSquare:   "Square",
	ShapeStar:     "Star",
	ShapeSpiral:   "Spiral",
	ShapePentagon: "Pentagon",
	ShapeOctagon:  "Octagon",
	ShapePlus:     "Plus",
	ShapeTriangle: "Triangle",
	ShapeCross:    "Cross",
}

func (s Shape) String() string {
	if s >= 0 && int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "Unknown"
}

// EnemyType определяет силуэт и цвет врага. На движение не влияет.
type EnemyType int

const (
	EnemyFlipper EnemyType = iota
	EnemyTanker
	EnemySpiker
	EnemyFuseball
	EnemyPulsar
)

func (t EnemyType) String() string {
	if def, ok := EnemyLibrary[t]; ok {
		return def.Name
	}
	return "Unknown"
}
