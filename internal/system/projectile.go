// internal/system/projectile.go
package system

import (
	"go-tempest/internal/component"
	"go-tempest/internal/config"
	"go-tempest/internal/entity"
	"go-tempest/internal/event"
	"go-tempest/internal/types"
)

// ProjectileSystem создаёт снаряды и убирает те, что долетели до центра.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Spawn создаёт снаряд на внешней точке линии lane. Ограничений на
// количество снарядов на одной линии нет.
func (s *ProjectileSystem) Spawn(lane int) types.EntityID {
	id := s.ecs.NewEntity()
	pos := ProjectilePosition(s.ecs.Web, lane, 1)
	s.ecs.Positions[id] = &pos
	s.ecs.Lanes[id] = &component.LaneMotion{Lane: lane, Progress: 1}
	s.ecs.Projectiles[id] = &component.Projectile{Speed: config.ProjectileSpeed}
	return id
}

// PruneSpent удаляет снаряды с прогрессом <= 0 (промах).
func (s *ProjectileSystem) PruneSpent() {
	for id := range s.ecs.Projectiles {
		lane := s.ecs.Lanes[id]
		if lane.Progress > 0 {
			continue
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileSpent, Data: id})
		s.ecs.RemoveProjectile(id)
	}
}
