// internal/system/player_system.go
package system

import (
	"go-tempest/internal/config"
	"go-tempest/internal/entity"
	"go-tempest/internal/event"
	"go-tempest/pkg/utils"
)

// PlayerSystem отвечает за команды игрока и начисление очков.
type PlayerSystem struct {
	ecs         *entity.ECS
	projectiles *ProjectileSystem
}

func NewPlayerSystem(ecs *entity.ECS, projectiles *ProjectileSystem) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, projectiles: projectiles}
}

// MoveLane сдвигает корабль на step линий с заворотом и сразу ставит его
// на внешнюю точку новой линии.
func (s *PlayerSystem) MoveLane(step int) {
	n := s.ecs.Web.LaneCount()
	if n == 0 {
		return
	}
	player := s.ecs.Player
	player.Lane = utils.WrapIndex(player.Lane+step, n)
	player.Position = s.ecs.Web.Outer[player.Lane]
}

// Fire выпускает снаряд по текущей линии корабля.
func (s *PlayerSystem) Fire() {
	s.projectiles.Spawn(s.ecs.Player.Lane)
}

// TakeSuperzapperCharge списывает заряд, если он есть.
func (s *PlayerSystem) TakeSuperzapperCharge() bool {
	if s.ecs.Player.SuperzapperCharges <= 0 {
		return false
	}
	s.ecs.Player.SuperzapperCharges--
	return true
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		s.ecs.Player.Score += config.KillScore
	case event.LevelAdvanced:
		s.ecs.Player.SuperzapperCharges = config.SuperzapperCharges
	}
}
