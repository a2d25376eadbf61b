package system

import (
	"go-tempest/internal/defs"
	"go-tempest/internal/entity"
	"go-tempest/internal/event"
	"go-tempest/pkg/utils"
	"go-tempest/pkg/web"
)

// LevelSystem отвечает за загрузку уровня и переход на следующий
// после выполнения нормы убийств.
type LevelSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	motion          *MotionSystem
	center          web.Point
}

func NewLevelSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, motion *MotionSystem, center web.Point) *LevelSystem {
	return &LevelSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		motion:          motion,
		center:          center,
	}
}

// Load делает уровень index текущим: сбрасывает таймер и счётчик убийств,
// перестраивает паутину и переставляет корабль на его линию.
// Живые враги и снаряды остаются на своих линиях.
func (s *LevelSystem) Load(index int) {
	if index < 0 {
		index = 0
	}
	if index > defs.LastLevel() {
		index = defs.LastLevel()
	}
	cfg := defs.GetLevel(index)

	s.ecs.Level.Index = index
	s.ecs.Level.Config = cfg
	s.ecs.Level.SpawnTimer = 0
	s.ecs.Level.Kills = 0
	s.ecs.Web = web.MustBuild(cfg, s.center)

	player := s.ecs.Player
	player.Lane = utils.WrapIndex(player.Lane, cfg.LaneCount)
	player.Position = s.ecs.Web.Outer[player.Lane]

	s.motion.RefreshPositions()
}

// Update переводит игру на следующий уровень, если норма выполнена и
// текущий уровень не последний. Возвращает true при переходе.
func (s *LevelSystem) Update() bool {
	level := s.ecs.Level
	if level.Kills < level.Config.KillQuota || level.Index >= defs.LastLevel() {
		return false
	}
	s.Load(level.Index + 1)
	s.eventDispatcher.Dispatch(event.Event{Type: event.LevelAdvanced, Data: event.LevelData{
		Index:  s.ecs.Level.Index,
		Config: s.ecs.Level.Config,
	}})
	return true
}
