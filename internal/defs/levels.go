// internal/defs/levels.go
package defs

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel возвращается Validate для некорректной записи каталога.
var ErrInvalidLevel = errors.New("invalid level config")

// LevelConfig описывает параметры одного уровня. Значение неизменяемое:
// при переходе на следующий уровень заменяется целиком.
type LevelConfig struct {
	LaneCount     int
	InnerRadius   float64
	OuterRadius   float64
	EnemySpeed    float64 // единиц в секунду
	SpawnInterval float64 // секунды
	KillQuota     int
	Shape         Shape
	EnemyType     EnemyType
}

// Gap — расстояние между кольцами. На него нормируется движение по линии,
// поэтому время прохода линии не зависит от размеров уровня.
func (c LevelConfig) Gap() float64 {
	return c.OuterRadius - c.InnerRadius
}

// Validate проверяет предусловия, которые нужны построителю паутины и движению.
func (c LevelConfig) Validate() error {
	switch {
	case c.LaneCount <= 0:
		return fmt.Errorf("%w: lane count %d", ErrInvalidLevel, c.LaneCount)
	case c.InnerRadius <= 0:
		return fmt.Errorf("%w: inner radius %.2f", ErrInvalidLevel, c.InnerRadius)
	case c.OuterRadius <= c.InnerRadius:
		return fmt.Errorf("%w: outer radius %.2f <= inner radius %.2f", ErrInvalidLevel, c.OuterRadius, c.InnerRadius)
	case c.EnemySpeed <= 0:
		return fmt.Errorf("%w: enemy speed %.2f", ErrInvalidLevel, c.EnemySpeed)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval %.2f", ErrInvalidLevel, c.SpawnInterval)
	case c.KillQuota <= 0:
		return fmt.Errorf("%w: kill quota %d", ErrInvalidLevel, c.KillQuota)
	}
	return nil
}

// levels — каталог уровней, индекс 0 самый лёгкий.
// Каждая следующая запись строго сложнее предыдущей.
var levels = [...]LevelConfig{
	{LaneCount: 16, InnerRadius: 100, OuterRadius: 300, EnemySpeed: 100, SpawnInterval: 2.00, KillQuota: 10, Shape: ShapeCircle, EnemyType: EnemyFlipper},
	{LaneCount: 18, InnerRadius: 104, OuterRadius: 308, EnemySpeed: 110, SpawnInterval: 1.85, KillQuota: 12, Shape: ShapeSquare, EnemyType: EnemyTanker},
	{LaneCount: 20, InnerRadius: 108, OuterRadius: 316, EnemySpeed: 120, SpawnInterval: 1.70, KillQuota: 14, Shape: ShapeStar, EnemyType: EnemySpiker},
	{LaneCount: 22, InnerRadius: 112, OuterRadius: 324, EnemySpeed: 130, SpawnInterval: 1.55, KillQuota: 16, Shape: ShapeSpiral, EnemyType: EnemyFuseball},
	{LaneCount: 24, InnerRadius: 116, OuterRadius: 332, EnemySpeed: 140, SpawnInterval: 1.40, KillQuota: 18, Shape: ShapePentagon, EnemyType: EnemyPulsar},
	{LaneCount: 26, InnerRadius: 120, OuterRadius: 340, EnemySpeed: 150, SpawnInterval: 1.25, KillQuota: 20, Shape: ShapeOctagon, EnemyType: EnemyFlipper},
	{LaneCount: 28, InnerRadius: 124, OuterRadius: 348, EnemySpeed: 160, SpawnInterval: 1.10, KillQuota: 22, Shape: ShapePlus, EnemyType: EnemyTanker},
	{LaneCount: 30, InnerRadius: 128, OuterRadius: 356, EnemySpeed: 170, SpawnInterval: 0.95, KillQuota: 24, Shape: ShapeTriangle, EnemyType: EnemySpiker},
	{LaneCount: 32, InnerRadius: 132, OuterRadius: 364, EnemySpeed: 180, SpawnInterval: 0.80, KillQuota: 26, Shape: ShapeCross, EnemyType: EnemyFuseball},
	{LaneCount: 34, InnerRadius: 136, OuterRadius: 372, EnemySpeed: 190, SpawnInterval: 0.65, KillQuota: 28, Shape: ShapeCircle, EnemyType: EnemyPulsar},
}

// GetLevel возвращает параметры уровня по индексу.
// Индексы за концом таблицы дают последний (самый сложный) уровень.
func GetLevel(index int) LevelConfig {
	if index < 0 {
		index = 0
	}
	if index >= len(levels) {
		index = len(levels) - 1
	}
	return levels[index]
}

// LevelCount возвращает число записей в каталоге.
func LevelCount() int {
	return len(levels)
}

// LastLevel — индекс последнего уровня. После него переходов нет.
func LastLevel() int {
	return len(levels) - 1
}
