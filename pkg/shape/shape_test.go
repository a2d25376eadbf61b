package shape

import (
	"math"
	"testing"

	"go-tempest/internal/config"
	"go-tempest/internal/defs"
	"go-tempest/internal/entity"
	"go-tempest/pkg/web"
)

func TestShipOutlineSitsOnOuterAnchor(t *testing.T) {
	g := web.MustBuild(defs.GetLevel(0), web.Point{X: 512, Y: 384})
	pos := g.Outer[0] // (812, 384), линия смотрит вдоль +X
	pts := Ship(g, 0, pos)
	if len(pts) != 6 {
		t.Fatalf("ship has %d points, want 6", len(pts))
	}
	// основание по обе стороны от якоря, рожки дальше от центра
	if math.Abs(pts[0].Dist(pos)-config.ShipBaseWidth/2) > 1e-9 {
		t.Errorf("base left %+v not half width from anchor", pts[0])
	}
	if pts[1].X <= pos.X {
		t.Errorf("arm %+v does not point outward", pts[1])
	}
}

func TestEnemyOutlineCentredOnEnemy(t *testing.T) {
	g := web.MustBuild(defs.GetLevel(0), web.Point{X: 512, Y: 384})
	for typ := range defs.EnemyLibrary {
		view := entity.EnemyView{Lane: 4, Position: web.Point{X: 500, Y: 200}, Type: typ, Age: 0.3}
		pts := Enemy(g, view)
		if len(pts) != len(defs.EnemyLibrary[typ].Outline) {
			t.Fatalf("%v: %d points", typ, len(pts))
		}
		for _, p := range pts {
			if p.Dist(view.Position) > 20 {
				t.Errorf("%v: vertex %+v too far from enemy", typ, p)
			}
		}
	}
}
