package web

import (
	"math"

	"go-tempest/internal/defs"
)

// layout возвращает для линии i из n направление от центра (не обязательно
// единичное) и множитель радиуса. Внутренняя и внешняя точки получаются
// умножением на свой радиус независимо.
type layout func(i, n int) (dir Point, factor float64)

func layoutFor(shape defs.Shape) layout {
	switch shape {
	case defs.ShapeCircle:
		return circleLayout
	case defs.ShapeSquare:
		return squareLayout
	case defs.ShapeStar:
		return starLayout
	case defs.ShapeSpiral:
		return spiralLayout
	case defs.ShapePentagon:
		return polygonLayout(5, 0.5)
	case defs.ShapeOctagon:
		return polygonLayout(8, 0)
	default:
		// Plus, Triangle, Cross и всё неизвестное строятся как круг
		return circleLayout
	}
}

func unit(angle float64) Point {
	return Point{math.Cos(angle), math.Sin(angle)}
}

func circleLayout(i, n int) (Point, float64) {
	return unit(2 * math.Pi * float64(i) / float64(n)), 1
}

// squareLayout обходит периметр квадрата [-1,1]x[-1,1]: t = 4i/n,
// целая часть t — сторона, дробная — положение на стороне.
func squareLayout(i, n int) (Point, float64) {
	t := 4 * float64(i) / float64(n)
	side := math.Floor(t)
	f := t - side
	switch side {
	case 0:
		return Point{1 - 2*f, -1}, 1
	case 1:
		return Point{-1, -1 + 2*f}, 1
	case 2:
		return Point{-1 + 2*f, 1}, 1
	default:
		return Point{1, 1 - 2*f}, 1
	}
}

// starLayout чередует длинные и короткие лучи.
func starLayout(i, n int) (Point, float64) {
	factor := 1.0
	if i%2 == 1 {
		factor = 0.5
	}
	return unit(2 * math.Pi * float64(i) / float64(n)), factor
}

// spiralLayout делает два оборота, радиус растёт от 20% до 100%.
func spiralLayout(i, n int) (Point, float64) {
	t := float64(i) / float64(n)
	return unit(4 * math.Pi * t), 0.2 + 0.8*t
}

// polygonLayout раскладывает линии по периметру k-угольника в единицах
// вершин (s = k*t), offset в долях π поворачивает первую линию к вершине.
func polygonLayout(k int, offset float64) layout {
	return func(i, n int) (Point, float64) {
		s := float64(k) * float64(i) / float64(n)
		return unit(math.Pi * (2*s/float64(k) - offset)), 1
	}
}
