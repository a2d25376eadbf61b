// internal/system/spawn.go
package system

import (
	"go-tempest/internal/component"
	"go-tempest/internal/entity"
	"go-tempest/internal/event"
	"go-tempest/internal/types"
)

// RandSource — источник случайных линий. В игре это utils.PRNGService,
// в тестах подставляется предсказуемая реализация.
type RandSource interface {
	Intn(n int) int
}

// SpawnSystem выпускает врагов из центра по таймеру уровня и убирает
// тех, кто добрался до внешнего кольца.
type SpawnSystem struct {
	ecs             *entity.ECS
	rng             RandSource
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(ecs *entity.ECS, rng RandSource, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update копит время и выпускает не более одного врага за тик,
// сколько бы таймер ни перескочил интервал.
func (s *SpawnSystem) Update(deltaTime float64) {
	level := s.ecs.Level
	level.SpawnTimer += deltaTime
	if level.SpawnTimer >= level.Config.SpawnInterval {
		level.SpawnTimer = 0
		s.SpawnEnemy(s.rng.Intn(s.ecs.Web.LaneCount()))
	}
}

// SpawnEnemy ставит врага текущего типа на внутреннюю точку линии lane.
func (s *SpawnSystem) SpawnEnemy(lane int) types.EntityID {
	id := s.ecs.NewEntity()
	pos := EnemyPosition(s.ecs.Web, lane, 0)
	s.ecs.Positions[id] = &pos
	s.ecs.Lanes[id] = &component.LaneMotion{Lane: lane, Progress: 0}
	s.ecs.Enemies[id] = &component.Enemy{Type: s.ecs.Level.Config.EnemyType}
	return id
}

// PruneEscaped удаляет врагов, дошедших до внешнего кольца. Это не урон
// игроку, враг просто исчезает.
func (s *SpawnSystem) PruneEscaped() {
	for id, enemy := range s.ecs.Enemies {
		lane := s.ecs.Lanes[id]
		if lane.Progress < 1 {
			continue
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: event.KillData{
			EnemyID:  id,
			Lane:     lane.Lane,
			Position: *s.ecs.Positions[id],
			Type:     enemy.Type,
		}})
		s.ecs.RemoveEnemy(id)
	}
}
