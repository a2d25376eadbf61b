package entity

import (
	"maps"
	"slices"

	"go-tempest/internal/component"
	"go-tempest/internal/defs"
	"go-tempest/internal/types"
	"go-tempest/pkg/web"
)

// EnemyView — враг глазами отрисовки.
type EnemyView struct {
	ID       types.EntityID
	Lane     int
	Progress float64
	Position web.Point
	Type     defs.EnemyType
	Age      float64
}

// ProjectileView — снаряд глазами отрисовки.
type ProjectileView struct {
	ID       types.EntityID
	Lane     int
	Progress float64
	Position web.Point
}

// BurstView — вспышка; Fraction растёт от 0 до 1 за время жизни.
type BurstView struct {
	Position web.Point
	Fraction float64
}

// Snapshot — копия состояния после тика. Отрисовка читает только её и
// не может изменить игру. Списки отсортированы по ID.
type Snapshot struct {
	Tick        uint64
	GameTime    float64
	Level       int
	Config      defs.LevelConfig
	Kills       int
	Web         web.Geometry
	Player      component.Player
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Bursts      []BurstView
	GameOver    bool
}

// IsLastLevel сообщает, что переходов дальше не будет.
func (s Snapshot) IsLastLevel() bool {
	return s.Level >= defs.LastLevel()
}

// Snapshot собирает копию текущего состояния.
func (ecs *ECS) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     ecs.Tick,
		GameTime: ecs.GameTime,
		Level:    ecs.Level.Index,
		Config:   ecs.Level.Config,
		Kills:    ecs.Level.Kills,
		Web: web.Geometry{
			Inner: slices.Clone(ecs.Web.Inner),
			Outer: slices.Clone(ecs.Web.Outer),
		},
		Player:      *ecs.Player,
		Enemies:     make([]EnemyView, 0, len(ecs.Enemies)),
		Projectiles: make([]ProjectileView, 0, len(ecs.Projectiles)),
		Bursts:      make([]BurstView, 0, len(ecs.Bursts)),
		GameOver:    ecs.GameState.IsOver(),
	}

	for _, id := range slices.Sorted(maps.Keys(ecs.Enemies)) {
		lane := ecs.Lanes[id]
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:       id,
			Lane:     lane.Lane,
			Progress: lane.Progress,
			Position: *ecs.Positions[id],
			Type:     ecs.Enemies[id].Type,
			Age:      ecs.Enemies[id].Age,
		})
	}
	for _, id := range slices.Sorted(maps.Keys(ecs.Projectiles)) {
		lane := ecs.Lanes[id]
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:       id,
			Lane:     lane.Lane,
			Progress: lane.Progress,
			Position: *ecs.Positions[id],
		})
	}
	for _, id := range slices.Sorted(maps.Keys(ecs.Bursts)) {
		snap.Bursts = append(snap.Bursts, BurstView{
			Position: *ecs.Positions[id],
			Fraction: ecs.Bursts[id].Fraction(),
		})
	}
	return snap
}
