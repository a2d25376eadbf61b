// internal/component/visual.go
package component

import "go-tempest/pkg/utils"

// Burst — вспышка на месте уничтоженного врага. Только для отрисовки.
type Burst struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// Fraction — доля прошедшего времени эффекта в [0, 1].
func (b *Burst) Fraction() float64 {
	if b.Duration <= 0 {
		return 1
	}
	return utils.Clamp(b.Timer/b.Duration, 0, 1)
}
