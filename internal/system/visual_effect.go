// internal/system/visual_effect.go
package system

import (
	"go-tempest/internal/component"
	"go-tempest/internal/config"
	"go-tempest/internal/entity"
	"go-tempest/internal/event"
)

// VisualEffectSystem управляет вспышками на месте сбитых врагов.
// На симуляцию не влияет.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// OnEvent создаёт вспышку для каждого уничтоженного врага.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	data, ok := e.Data.(event.KillData)
	if !ok {
		return
	}
	id := s.ecs.NewEntity()
	pos := data.Position
	s.ecs.Positions[id] = &pos
	s.ecs.Bursts[id] = &component.Burst{Duration: config.BurstDuration}
}

// Update обновляет таймеры вспышек и удаляет истёкшие.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, burst := range s.ecs.Bursts {
		burst.Timer += deltaTime
		if burst.Timer >= burst.Duration {
			s.ecs.RemoveBurst(id)
		}
	}
}
