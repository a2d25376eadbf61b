// internal/system/movement.go
package system

import (
	"go-tempest/internal/entity"
	"go-tempest/pkg/utils"
	"go-tempest/pkg/web"
)

// AdvanceEnemy сдвигает врага к внешнему кольцу. Прогресс нормирован на
// зазор между кольцами и ограничен сверху единицей.
func AdvanceEnemy(progress, speed, dt, gap float64) float64 {
	next := progress + speed*dt/gap
	if next > 1 {
		return 1
	}
	return next
}

// AdvanceProjectile сдвигает снаряд к внутреннему кольцу. Снизу прогресс
// не ограничивается: отрицательные снаряды удаляются отдельным проходом.
func AdvanceProjectile(progress, speed, dt, gap float64) float64 {
	return progress - speed*dt/gap
}

// EnemyPosition — точка на линии lane при прогрессе врага progress.
func EnemyPosition(g web.Geometry, lane int, progress float64) web.Point {
	inner, outer := g.Lane(utils.WrapIndex(lane, g.LaneCount()))
	return inner.Lerp(outer, progress)
}

// ProjectilePosition — точка на линии lane при прогрессе снаряда progress.
// Снаряд идёт от внешней точки к внутренней.
func ProjectilePosition(g web.Geometry, lane int, progress float64) web.Point {
	inner, outer := g.Lane(utils.WrapIndex(lane, g.LaneCount()))
	return outer.Lerp(inner, 1-progress)
}

// MotionSystem двигает врагов и снаряды вдоль линий.
type MotionSystem struct {
	ecs *entity.ECS
}

func NewMotionSystem(ecs *entity.ECS) *MotionSystem {
	return &MotionSystem{ecs: ecs}
}

// UpdateProjectiles продвигает все снаряды и пересчитывает их позиции.
func (s *MotionSystem) UpdateProjectiles(deltaTime float64) {
	gap := s.ecs.Level.Config.Gap()
	for id, proj := range s.ecs.Projectiles {
		lane, ok := s.ecs.Lanes[id]
		if !ok {
			s.ecs.RemoveProjectile(id)
			continue
		}
		lane.Progress = AdvanceProjectile(lane.Progress, proj.Speed, deltaTime, gap)
		*s.ecs.Positions[id] = ProjectilePosition(s.ecs.Web, lane.Lane, lane.Progress)
	}
}

// UpdateEnemies продвигает всех врагов со скоростью текущего уровня.
func (s *MotionSystem) UpdateEnemies(deltaTime float64) {
	cfg := s.ecs.Level.Config
	gap := cfg.Gap()
	for id, enemy := range s.ecs.Enemies {
		lane, ok := s.ecs.Lanes[id]
		if !ok {
			s.ecs.RemoveEnemy(id)
			continue
		}
		enemy.Age += deltaTime
		lane.Progress = AdvanceEnemy(lane.Progress, cfg.EnemySpeed, deltaTime, gap)
		*s.ecs.Positions[id] = EnemyPosition(s.ecs.Web, lane.Lane, lane.Progress)
	}
}

// RefreshPositions пересчитывает позиции всех сущностей по текущей паутине.
// Нужен после перестройки паутины при смене уровня.
func (s *MotionSystem) RefreshPositions() {
	for id := range s.ecs.Enemies {
		if lane, ok := s.ecs.Lanes[id]; ok {
			*s.ecs.Positions[id] = EnemyPosition(s.ecs.Web, lane.Lane, lane.Progress)
		}
	}
	for id := range s.ecs.Projectiles {
		if lane, ok := s.ecs.Lanes[id]; ok {
			*s.ecs.Positions[id] = ProjectilePosition(s.ecs.Web, lane.Lane, lane.Progress)
		}
	}
}
