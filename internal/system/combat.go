package system

import (
	"maps"
	"slices"

	"go-tempest/internal/component"
	"go-tempest/internal/config"
	"go-tempest/internal/entity"
	"go-tempest/internal/event"
	"go-tempest/internal/types"
)

// CombatSystem проверяет столкновения и уничтожает сущности.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	radius          float64
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		radius:          config.CollisionRadius,
	}
}

// CheckPlayerCollision переводит игру в терминальное состояние, если любой
// враг ближе радиуса столкновения к кораблю. Возвращает true при столкновении.
func (s *CombatSystem) CheckPlayerCollision() bool {
	player := s.ecs.Player.Position
	for id := range s.ecs.Enemies {
		if s.ecs.Positions[id].Dist(player) < s.radius {
			s.ecs.GameState.Phase = component.GameOverPhase
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDestroyed, Data: event.LevelData{
				Index:  s.ecs.Level.Index,
				Config: s.ecs.Level.Config,
			}})
			return true
		}
	}
	return false
}

// ResolveHits находит все пары снаряд-враг в радиусе столкновения и только
// потом удаляет отмеченных. Один снаряд может сбить нескольких врагов,
// один враг засчитывается один раз, сколько бы снарядов в него ни попало.
// Возвращает число уничтоженных врагов.
func (s *CombatSystem) ResolveHits() int {
	hitEnemies := make(map[types.EntityID]struct{})
	hitProjectiles := make(map[types.EntityID]struct{})

	for projID := range s.ecs.Projectiles {
		projPos := s.ecs.Positions[projID]
		for enemyID := range s.ecs.Enemies {
			if s.ecs.Positions[enemyID].Dist(*projPos) < s.radius {
				hitEnemies[enemyID] = struct{}{}
				hitProjectiles[projID] = struct{}{}
			}
		}
	}

	for _, id := range slices.Sorted(maps.Keys(hitEnemies)) {
		s.destroyEnemy(id)
	}
	for id := range hitProjectiles {
		s.ecs.RemoveProjectile(id)
	}
	return len(hitEnemies)
}

// DestroyAllEnemies уничтожает всех живых врагов (суперзаппер).
// Каждый засчитывается как убийство.
func (s *CombatSystem) DestroyAllEnemies() int {
	ids := slices.Sorted(maps.Keys(s.ecs.Enemies))
	for _, id := range ids {
		s.destroyEnemy(id)
	}
	return len(ids)
}

func (s *CombatSystem) destroyEnemy(id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return
	}
	data := event.KillData{
		EnemyID:  id,
		Lane:     s.ecs.Lanes[id].Lane,
		Position: *s.ecs.Positions[id],
		Type:     enemy.Type,
	}
	s.ecs.RemoveEnemy(id)
	s.ecs.Level.Kills++
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
}
