package render

import (
	"image/color"

	"go-tempest/internal/config"
	"go-tempest/internal/defs"
	"go-tempest/internal/entity"
	"go-tempest/pkg/shape"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneRenderer рисует кадр по снимку состояния: паутину, снаряды,
// врагов, вспышки и корабль.
type SceneRenderer struct {
	web *WebRenderer
}

func NewSceneRenderer(colors WebColors, screenWidth, screenHeight int) *SceneRenderer {
	return &SceneRenderer{web: NewWebRenderer(colors, screenWidth, screenHeight)}
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, snap entity.Snapshot) {
	r.web.Draw(screen, snap.Web, snap.Level, snap.GameOver)

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), config.ProjectileRadius, config.ProjectileColor, true)
	}

	for _, e := range snap.Enemies {
		def, ok := defs.EnemyLibrary[e.Type]
		if !ok {
			continue
		}
		r.web.FillPolygon(screen, shape.Enemy(snap.Web, e), def.Color)
	}

	for _, b := range snap.Bursts {
		radius := float32(b.Fraction * config.BurstMaxRadius)
		c := config.BurstColor
		clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * (1 - b.Fraction))}
		vector.StrokeCircle(screen, float32(b.Position.X), float32(b.Position.Y), radius, 2, clr, true)
	}

	shipColor := config.PlayerColor
	if snap.GameOver {
		shipColor = config.GameOverColor
	}
	r.web.FillPolygon(screen, shape.Ship(snap.Web, snap.Player.Lane, snap.Player.Position), shipColor)
}
