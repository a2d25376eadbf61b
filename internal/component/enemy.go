package component

import "go-tempest/internal/defs"

// Enemy представляет вражескую сущность, ползущую к внешнему кольцу.
type Enemy struct {
	Type defs.EnemyType
	Age  float64 // секунды с момента появления, для анимации силуэта
}
