package entity

import (
	"testing"

	"go-tempest/internal/component"
	"go-tempest/pkg/web"
)

func addEnemy(ecs *ECS, lane int, progress float64) {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: float64(lane), Y: progress}
	ecs.Lanes[id] = &component.LaneMotion{Lane: lane, Progress: progress}
	ecs.Enemies[id] = &component.Enemy{}
}

func TestNewEntityNeverZero(t *testing.T) {
	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	if a == 0 || b == 0 || a == b {
		t.Fatalf("ids %d, %d", a, b)
	}
}

func TestRemoveEnemyDropsAllComponents(t *testing.T) {
	ecs := NewECS()
	addEnemy(ecs, 3, 0.5)
	for id := range ecs.Enemies {
		ecs.RemoveEnemy(id)
	}
	if len(ecs.Enemies) != 0 || len(ecs.Lanes) != 0 || len(ecs.Positions) != 0 {
		t.Fatalf("leftover components: %d enemies, %d lanes, %d positions", len(ecs.Enemies), len(ecs.Lanes), len(ecs.Positions))
	}
}

func TestSnapshotSortedAndDetached(t *testing.T) {
	ecs := NewECS()
	ecs.Web = web.Geometry{
		Inner: []web.Point{{X: 1}, {X: 2}},
		Outer: []web.Point{{X: 3}, {X: 4}},
	}
	for i := 0; i < 5; i++ {
		addEnemy(ecs, i, float64(i)/10)
	}

	snap := ecs.Snapshot()
	if len(snap.Enemies) != 5 {
		t.Fatalf("snapshot has %d enemies, want 5", len(snap.Enemies))
	}
	for i := 1; i < len(snap.Enemies); i++ {
		if snap.Enemies[i-1].ID >= snap.Enemies[i].ID {
			t.Fatalf("enemies not sorted by id: %+v", snap.Enemies)
		}
	}

	snap.Web.Inner[0].X = 99
	snap.Player.Lane = 7
	if ecs.Web.Inner[0].X != 1 || ecs.Player.Lane != 0 {
		t.Fatal("snapshot shares memory with the ECS")
	}
	if snap.GameOver {
		t.Fatal("fresh ECS reported game over")
	}
}
