package system

import (
	"math"
	"testing"

	"go-tempest/internal/config"
	"go-tempest/internal/entity"
	"go-tempest/internal/event"
	"go-tempest/internal/types"
	"go-tempest/pkg/web"
)

// fixedLanes отдаёт линии по кругу из заданного списка.
type fixedLanes struct {
	lanes []int
	next  int
}

func (f *fixedLanes) Intn(n int) int {
	lane := f.lanes[f.next%len(f.lanes)] % n
	f.next++
	return lane
}

// recorder запоминает все полученные события.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type world struct {
	ecs         *entity.ECS
	dispatcher  *event.Dispatcher
	motion      *MotionSystem
	spawn       *SpawnSystem
	projectiles *ProjectileSystem
	combat      *CombatSystem
	levels      *LevelSystem
	player      *PlayerSystem
	log         *recorder
}

func newWorld(t *testing.T, lanes ...int) *world {
	t.Helper()
	if len(lanes) == 0 {
		lanes = []int{0}
	}
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	motion := NewMotionSystem(ecs)
	projectiles := NewProjectileSystem(ecs, dispatcher)
	w := &world{
		ecs:         ecs,
		dispatcher:  dispatcher,
		motion:      motion,
		spawn:       NewSpawnSystem(ecs, &fixedLanes{lanes: lanes}, dispatcher),
		projectiles: projectiles,
		combat:      NewCombatSystem(ecs, dispatcher),
		levels:      NewLevelSystem(ecs, dispatcher, motion, web.Point{X: config.CenterX, Y: config.CenterY}),
		player:      NewPlayerSystem(ecs, projectiles),
		log:         &recorder{},
	}
	for _, et := range []event.EventType{
		event.EnemyKilled, event.EnemyEscaped, event.ProjectileSpent,
		event.LevelAdvanced, event.PlayerDestroyed,
	} {
		dispatcher.Subscribe(et, w.log)
	}
	dispatcher.Subscribe(event.EnemyKilled, w.player)
	dispatcher.Subscribe(event.LevelAdvanced, w.player)
	ecs.Player.SuperzapperCharges = config.SuperzapperCharges
	w.levels.Load(0)
	return w
}

// step повторяет порядок тика игры без проверки столкновения с игроком.
func (w *world) step(dt float64) {
	w.spawn.Update(dt)
	w.motion.UpdateProjectiles(dt)
	w.combat.ResolveHits()
	w.projectiles.PruneSpent()
	w.motion.UpdateEnemies(dt)
	w.spawn.PruneEscaped()
	w.levels.Update()
}

func (w *world) placeEnemy(lane int, progress float64) types.EntityID {
	id := w.spawn.SpawnEnemy(lane)
	w.ecs.Lanes[id].Progress = progress
	*w.ecs.Positions[id] = EnemyPosition(w.ecs.Web, lane, progress)
	return id
}

func (w *world) placeProjectile(lane int, progress float64) types.EntityID {
	id := w.projectiles.Spawn(lane)
	w.ecs.Lanes[id].Progress = progress
	*w.ecs.Positions[id] = ProjectilePosition(w.ecs.Web, lane, progress)
	return id
}

func TestAdvanceEnemyClampsAtOuterRing(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		dt       float64
		want     float64
	}{
		{"middle", 0.5, 0.5, 0.75},
		{"overshoot", 0.9, 1, 1},
		{"already out", 1, 0.1, 1},
		{"standing still", 0.3, 0, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdvanceEnemy(tt.progress, 100, tt.dt, 200); got != tt.want {
				t.Errorf("AdvanceEnemy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvanceProjectileIsNotClamped(t *testing.T) {
	p := 1.0
	for i := 0; i < 5; i++ {
		next := AdvanceProjectile(p, 400, 0.25, 200)
		if next >= p {
			t.Fatalf("step %d: progress did not decrease (%v -> %v)", i, p, next)
		}
		p = next
	}
	if p != -1.5 {
		t.Fatalf("progress = %v, want -1.5", p)
	}
}

func TestPositionsFollowLaneEnds(t *testing.T) {
	w := newWorld(t)
	g := w.ecs.Web
	inner, outer := g.Lane(3)

	if got := EnemyPosition(g, 3, 0); got != inner {
		t.Errorf("enemy at 0: %v, want %v", got, inner)
	}
	if got := EnemyPosition(g, 3, 1); got != outer {
		t.Errorf("enemy at 1: %v, want %v", got, outer)
	}
	if got := ProjectilePosition(g, 3, 1); got != outer {
		t.Errorf("projectile at 1: %v, want %v", got, outer)
	}
	if got := ProjectilePosition(g, 3, 0); got != inner {
		t.Errorf("projectile at 0: %v, want %v", got, inner)
	}
}

func TestEnemyEscapesAfterTwoSeconds(t *testing.T) {
	// Уровень 0: зазор 200 px, скорость 100 px/s.
	w := newWorld(t)
	w.ecs.Level.Config.SpawnInterval = 100
	id := w.spawn.SpawnEnemy(5)

	for i := 0; i < 3; i++ {
		w.step(0.5)
	}
	if _, ok := w.ecs.Enemies[id]; !ok {
		t.Fatal("enemy removed before reaching the outer ring")
	}
	if got := w.ecs.Lanes[id].Progress; got != 0.75 {
		t.Fatalf("progress after 1.5s = %v, want 0.75", got)
	}

	w.step(0.5)
	if _, ok := w.ecs.Enemies[id]; ok {
		t.Fatal("enemy still alive after 2s")
	}
	if w.log.count(event.EnemyEscaped) != 1 {
		t.Fatalf("escaped events = %d, want 1", w.log.count(event.EnemyEscaped))
	}
	if w.ecs.Level.Kills != 0 {
		t.Fatalf("escape counted as a kill")
	}
	if w.ecs.GameState.IsOver() {
		t.Fatal("escape ended the game")
	}
}

func TestProjectileSpentAfterHalfSecond(t *testing.T) {
	w := newWorld(t)
	w.ecs.Level.Config.SpawnInterval = 100
	w.player.Fire()

	w.step(0.25)
	if len(w.ecs.Projectiles) != 1 {
		t.Fatalf("projectile gone after 0.25s")
	}
	w.step(0.25)
	if len(w.ecs.Projectiles) != 0 {
		t.Fatalf("projectile alive after 0.5s")
	}
	if w.log.count(event.ProjectileSpent) != 1 {
		t.Fatalf("spent events = %d, want 1", w.log.count(event.ProjectileSpent))
	}
}

func TestProjectileHitsEveryEnemyInRange(t *testing.T) {
	w := newWorld(t)
	a := w.placeEnemy(2, 0.5)
	b := w.placeEnemy(2, 0.5)
	w.placeProjectile(2, 0.5)

	if got := w.combat.ResolveHits(); got != 2 {
		t.Fatalf("ResolveHits = %d, want 2", got)
	}
	if _, ok := w.ecs.Enemies[a]; ok {
		t.Error("first enemy survived")
	}
	if _, ok := w.ecs.Enemies[b]; ok {
		t.Error("second enemy survived")
	}
	if len(w.ecs.Projectiles) != 0 {
		t.Error("projectile survived the hit")
	}
	if w.ecs.Level.Kills != 2 {
		t.Errorf("kills = %d, want 2", w.ecs.Level.Kills)
	}
	if w.ecs.Player.Score != 2*config.KillScore {
		t.Errorf("score = %d, want %d", w.ecs.Player.Score, 2*config.KillScore)
	}
}

func TestEnemyCountedOnceForSeveralProjectiles(t *testing.T) {
	w := newWorld(t)
	w.placeEnemy(4, 0.5)
	w.placeProjectile(4, 0.5)
	w.placeProjectile(4, 0.52)

	if got := w.combat.ResolveHits(); got != 1 {
		t.Fatalf("ResolveHits = %d, want 1", got)
	}
	if w.ecs.Level.Kills != 1 {
		t.Fatalf("kills = %d, want 1", w.ecs.Level.Kills)
	}
	if len(w.ecs.Projectiles) != 0 {
		t.Fatalf("%d projectiles left, both should be spent", len(w.ecs.Projectiles))
	}
	if w.log.count(event.EnemyKilled) != 1 {
		t.Fatalf("kill events = %d, want 1", w.log.count(event.EnemyKilled))
	}
}

func TestProjectileOnOtherLaneMisses(t *testing.T) {
	w := newWorld(t)
	w.placeEnemy(0, 0.5)
	w.placeProjectile(8, 0.5)

	if got := w.combat.ResolveHits(); got != 0 {
		t.Fatalf("ResolveHits = %d, want 0", got)
	}
}

func TestNoTunnelingAtSixtyFPS(t *testing.T) {
	w := newWorld(t)
	w.ecs.Level.Config.SpawnInterval = 100
	id := w.placeEnemy(0, 0.3)
	w.player.Fire()

	for i := 0; i < 60; i++ {
		w.step(1.0 / 60)
		if _, ok := w.ecs.Enemies[id]; !ok {
			return
		}
	}
	t.Fatal("projectile passed through the enemy")
}

func TestSpawnAtMostOnePerTick(t *testing.T) {
	w := newWorld(t, 7)
	w.spawn.Update(10)
	if len(w.ecs.Enemies) != 1 {
		t.Fatalf("%d enemies after a long tick, want 1", len(w.ecs.Enemies))
	}
	if w.ecs.Level.SpawnTimer != 0 {
		t.Fatalf("spawn timer = %v, want 0", w.ecs.Level.SpawnTimer)
	}
	for id := range w.ecs.Enemies {
		lane := w.ecs.Lanes[id]
		if lane.Lane != 7 || lane.Progress != 0 {
			t.Fatalf("spawned at lane %d progress %v", lane.Lane, lane.Progress)
		}
		if w.ecs.Enemies[id].Type != w.ecs.Level.Config.EnemyType {
			t.Fatalf("enemy type %v, want %v", w.ecs.Enemies[id].Type, w.ecs.Level.Config.EnemyType)
		}
	}
}

func TestSpawnWaitsForInterval(t *testing.T) {
	w := newWorld(t)
	w.spawn.Update(1.5)
	if len(w.ecs.Enemies) != 0 {
		t.Fatal("enemy spawned before the interval")
	}
	w.spawn.Update(0.5)
	if len(w.ecs.Enemies) != 1 {
		t.Fatalf("%d enemies after 2s, want 1", len(w.ecs.Enemies))
	}
}

func TestLevelAdvancesOnQuota(t *testing.T) {
	w := newWorld(t)
	w.ecs.Level.Kills = w.ecs.Level.Config.KillQuota - 1
	if w.levels.Update() {
		t.Fatal("advanced below quota")
	}

	w.ecs.Player.SuperzapperCharges = 0
	w.ecs.Level.Kills++
	if !w.levels.Update() {
		t.Fatal("did not advance on quota")
	}
	if w.ecs.Level.Index != 1 || w.ecs.Level.Kills != 0 || w.ecs.Level.SpawnTimer != 0 {
		t.Fatalf("level after advance: %+v", *w.ecs.Level)
	}
	if w.ecs.Web.LaneCount() != 18 {
		t.Fatalf("lanes = %d, want 18", w.ecs.Web.LaneCount())
	}
	if w.ecs.Player.SuperzapperCharges != config.SuperzapperCharges {
		t.Fatalf("superzapper not recharged")
	}
	if w.log.count(event.LevelAdvanced) != 1 {
		t.Fatalf("level events = %d, want 1", w.log.count(event.LevelAdvanced))
	}
}

func TestLastLevelNeverAdvances(t *testing.T) {
	w := newWorld(t)
	w.levels.Load(9)
	w.ecs.Level.Kills = 1000
	if w.levels.Update() {
		t.Fatal("advanced past the last level")
	}
	if w.ecs.Level.Index != 9 {
		t.Fatalf("level = %d, want 9", w.ecs.Level.Index)
	}
}

func TestLevelChangeKeepsEntitiesOnNewWeb(t *testing.T) {
	w := newWorld(t)
	enemy := w.placeEnemy(3, 0.4)
	proj := w.placeProjectile(3, 0.8)

	w.levels.Load(1)

	if got, want := *w.ecs.Positions[enemy], EnemyPosition(w.ecs.Web, 3, 0.4); got != want {
		t.Errorf("enemy at %v, want %v", got, want)
	}
	if got, want := *w.ecs.Positions[proj], ProjectilePosition(w.ecs.Web, 3, 0.8); got != want {
		t.Errorf("projectile at %v, want %v", got, want)
	}
}

func TestLevelLoadWrapsPlayerLane(t *testing.T) {
	w := newWorld(t)
	w.levels.Load(9)
	w.player.MoveLane(-1)
	last := w.ecs.Web.LaneCount() - 1

	w.levels.Load(0)
	if w.ecs.Player.Lane != last%16 {
		t.Fatalf("lane = %d, want %d", w.ecs.Player.Lane, last%16)
	}
	if w.ecs.Player.Position != w.ecs.Web.Outer[w.ecs.Player.Lane] {
		t.Fatal("player not on the outer anchor")
	}
}

func TestMoveLaneWrapsBothWays(t *testing.T) {
	w := newWorld(t)
	w.player.MoveLane(-1)
	if w.ecs.Player.Lane != 15 {
		t.Fatalf("lane = %d, want 15", w.ecs.Player.Lane)
	}
	if w.ecs.Player.Position != w.ecs.Web.Outer[15] {
		t.Fatal("player not snapped to lane 15")
	}
	w.player.MoveLane(1)
	if w.ecs.Player.Lane != 0 {
		t.Fatalf("lane = %d, want 0", w.ecs.Player.Lane)
	}
	if w.ecs.Player.Position != w.ecs.Web.Outer[0] {
		t.Fatal("player not snapped to lane 0")
	}
}

func TestPlayerCollisionEndsGame(t *testing.T) {
	w := newWorld(t)
	w.placeEnemy(0, 0.5)
	if w.combat.CheckPlayerCollision() {
		t.Fatal("collision with a distant enemy")
	}

	w.placeEnemy(0, 1)
	if !w.combat.CheckPlayerCollision() {
		t.Fatal("no collision with an enemy on the outer anchor")
	}
	if !w.ecs.GameState.IsOver() {
		t.Fatal("game is not over")
	}
	if w.log.count(event.PlayerDestroyed) != 1 {
		t.Fatalf("destroyed events = %d, want 1", w.log.count(event.PlayerDestroyed))
	}
}

func TestDestroyAllEnemiesCountsKills(t *testing.T) {
	w := newWorld(t)
	for lane := 0; lane < 4; lane++ {
		w.placeEnemy(lane, 0.2)
	}
	if !w.player.TakeSuperzapperCharge() {
		t.Fatal("no charge at level start")
	}
	if got := w.combat.DestroyAllEnemies(); got != 4 {
		t.Fatalf("destroyed %d, want 4", got)
	}
	if len(w.ecs.Enemies) != 0 || w.ecs.Level.Kills != 4 {
		t.Fatalf("enemies=%d kills=%d", len(w.ecs.Enemies), w.ecs.Level.Kills)
	}
	if w.ecs.Player.Score != 4*config.KillScore {
		t.Fatalf("score = %d", w.ecs.Player.Score)
	}
	if w.player.TakeSuperzapperCharge() {
		t.Fatal("second charge on the same level")
	}
}

func TestEnemyAgeGrows(t *testing.T) {
	w := newWorld(t)
	id := w.placeEnemy(1, 0)
	w.motion.UpdateEnemies(0.25)
	w.motion.UpdateEnemies(0.25)
	if got := w.ecs.Enemies[id].Age; math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("age = %v, want 0.5", got)
	}
}
