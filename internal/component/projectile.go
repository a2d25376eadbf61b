// internal/component/projectile.go
package component

// Projectile представляет снаряд, летящий от внешнего кольца к внутреннему.
// Progress в LaneMotion для снаряда убывает: 1 — точка выстрела, 0 — центр.
type Projectile struct {
	Speed float64 // пикселей в секунду
}
