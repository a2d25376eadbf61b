// internal/entity/ecs.go
package entity

import (
	"go-tempest/internal/component"
	"go-tempest/internal/types"
	"go-tempest/pkg/web"
)

// ECS — всё состояние одной игровой сессии. Экземпляр один на сессию и
// передаётся системам явно; одновременно его меняет только один тик.
type ECS struct {
	GameTime    float64
	Tick        uint64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Lanes       map[types.EntityID]*component.LaneMotion
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile
	Bursts      map[types.EntityID]*component.Burst
	Player      *component.Player
	Level       *component.Level
	Web         web.Geometry
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Lanes:       make(map[types.EntityID]*component.LaneMotion),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Bursts:      make(map[types.EntityID]*component.Burst),
		Player:      &component.Player{},
		Level:       &component.Level{},
		GameState: &component.GameState{
			Phase: component.PlayingPhase,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEnemy удаляет врага со всеми компонентами.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Lanes, id)
	delete(ecs.Enemies, id)
}

// RemoveProjectile удаляет снаряд со всеми компонентами.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Lanes, id)
	delete(ecs.Projectiles, id)
}

// RemoveBurst удаляет визуальную вспышку.
func (ecs *ECS) RemoveBurst(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Bursts, id)
}
