// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-tempest/internal/config"
	"go-tempest/internal/defs"
	"go-tempest/internal/entity"
	"go-tempest/internal/event"
	"go-tempest/internal/system"
	"go-tempest/pkg/web"
)

// Snapshot — состояние игры после тика, единственное, что видит отрисовка.
type Snapshot = entity.Snapshot

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	MotionSystem       *system.MotionSystem
	SpawnSystem        *system.SpawnSystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	LevelSystem        *system.LevelSystem
	PlayerSystem       *system.PlayerSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher
}

// NewGame initializes a new game instance on level startLevel. The web is
// centred on center; rng chooses spawn lanes.
func NewGame(center web.Point, rng system.RandSource, startLevel int) *Game {
	if rng == nil {
		panic("rng cannot be nil")
	}
	if startLevel < 0 || startLevel > defs.LastLevel() {
		panic(fmt.Sprintf("start level %d out of range [0, %d]", startLevel, defs.LastLevel()))
	}
	if err := defs.GetLevel(startLevel).Validate(); err != nil {
		panic(fmt.Errorf("start level %d: %w", startLevel, err))
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		MotionSystem:    system.NewMotionSystem(ecs),
		SpawnSystem:     system.NewSpawnSystem(ecs, rng, eventDispatcher),
		CombatSystem:    system.NewCombatSystem(ecs, eventDispatcher),
		EventDispatcher: eventDispatcher,
	}
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.LevelSystem = system.NewLevelSystem(ecs, eventDispatcher, g.MotionSystem, center)
	g.PlayerSystem = system.NewPlayerSystem(ecs, g.ProjectileSystem)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.LevelAdvanced, listener)
	eventDispatcher.Subscribe(event.PlayerDestroyed, listener)
	eventDispatcher.Subscribe(event.SuperzapperUsed, listener)

	eventDispatcher.Subscribe(event.EnemyKilled, g.PlayerSystem)
	eventDispatcher.Subscribe(event.LevelAdvanced, g.PlayerSystem)
	eventDispatcher.Subscribe(event.EnemyKilled, g.VisualEffectSystem)

	ecs.Player.SuperzapperCharges = config.SuperzapperCharges
	g.LevelSystem.Load(startLevel)

	return g
}

// GameEventListener пишет в лог переходы жизненного цикла игры.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelAdvanced:
		if data, ok := e.Data.(event.LevelData); ok {
			log.Printf("level %d: %d lanes, shape %s, quota %d", data.Index, data.Config.LaneCount, data.Config.Shape, data.Config.KillQuota)
		}
	case event.PlayerDestroyed:
		log.Printf("game over on level %d, score %d, time %.1fs", l.game.ECS.Level.Index, l.game.ECS.Player.Score, l.game.ECS.GameTime)
	case event.SuperzapperUsed:
		if killed, ok := e.Data.(int); ok {
			log.Printf("superzapper destroyed %d enemies", killed)
		}
	}
}

// Update продвигает симуляцию на deltaTime секунд. Порядок шагов
// фиксирован; после окончания игры Update ничего не делает.
func (g *Game) Update(deltaTime float64) {
	if g.ECS.GameState.IsOver() {
		return
	}
	g.ECS.Tick++
	g.ECS.GameTime += deltaTime

	if g.CombatSystem.CheckPlayerCollision() {
		return
	}

	g.SpawnSystem.Update(deltaTime)

	g.MotionSystem.UpdateProjectiles(deltaTime)
	g.CombatSystem.ResolveHits()
	g.ProjectileSystem.PruneSpent()

	g.MotionSystem.UpdateEnemies(deltaTime)
	g.SpawnSystem.PruneEscaped()

	g.LevelSystem.Update()

	g.VisualEffectSystem.Update(deltaTime)
}

// Fire выпускает снаряд по линии корабля.
func (g *Game) Fire() {
	if g.ECS.GameState.IsOver() {
		return
	}
	g.PlayerSystem.Fire()
}

// MoveLaneForward переводит корабль на следующую линию (индекс +1).
func (g *Game) MoveLaneForward() {
	if g.ECS.GameState.IsOver() {
		return
	}
	g.PlayerSystem.MoveLane(1)
}

// MoveLaneBackward переводит корабль на предыдущую линию (индекс -1).
func (g *Game) MoveLaneBackward() {
	if g.ECS.GameState.IsOver() {
		return
	}
	g.PlayerSystem.MoveLane(-1)
}

// UseSuperzapper уничтожает всех живых врагов, если остался заряд.
// Каждый враг засчитывается как убийство; переход уровня проверяется
// в следующем тике.
func (g *Game) UseSuperzapper() {
	if g.ECS.GameState.IsOver() || !g.PlayerSystem.TakeSuperzapperCharge() {
		return
	}
	killed := g.CombatSystem.DestroyAllEnemies()
	g.EventDispatcher.Dispatch(event.Event{Type: event.SuperzapperUsed, Data: killed})
}

// IsOver сообщает, что игра в терминальном состоянии.
func (g *Game) IsOver() bool {
	return g.ECS.GameState.IsOver()
}

// Snapshot возвращает копию состояния для отрисовки.
func (g *Game) Snapshot() Snapshot {
	return g.ECS.Snapshot()
}
