// internal/state/game_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	game "go-tempest/internal/app"
	"go-tempest/internal/config"
	"go-tempest/internal/defs"
	"go-tempest/internal/interfaces"
	"go-tempest/internal/system"
	"go-tempest/internal/ui"
	"go-tempest/pkg/render"
	"go-tempest/pkg/web"
)

// keyBindings связывает клавиши с командами игрока. Порядок важен:
// сначала смена линии, потом выстрел по новой линии.
var keyBindings = []struct {
	key     ebiten.Key
	command func(interfaces.Controls)
}{
	{ebiten.KeyLeft, interfaces.Controls.MoveLaneForward},
	{ebiten.KeyRight, interfaces.Controls.MoveLaneBackward},
	{ebiten.KeySpace, interfaces.Controls.Fire},
	{ebiten.KeyZ, interfaces.Controls.UseSuperzapper},
}

// GameState — состояние игры
type GameState struct {
	sm             *StateMachine
	game           *game.Game
	renderer       *render.SceneRenderer
	indicator      *ui.StateIndicator
	levelIndicator *ui.LevelIndicator
	hud            *ui.HUD
	fontFace       font.Face
}

func NewGameState(sm *StateMachine, rng system.RandSource, startLevel int, fontFace font.Face) *GameState {
	center := web.Point{X: config.CenterX, Y: config.CenterY}
	gameLogic := game.NewGame(center, rng, startLevel)

	webColors := render.WebColors{
		BackgroundColor: config.BackgroundColor,
		LaneColor:       config.LaneColor,
		InnerRingColor:  config.InnerRingColor,
		OuterRingColor:  config.OuterRingColor,
		StrokeWidth:     float32(config.WebStrokeWidth),
	}

	return &GameState{
		sm:       sm,
		game:     gameLogic,
		renderer: render.NewSceneRenderer(webColors, config.ScreenWidth, config.ScreenHeight),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		levelIndicator: ui.NewLevelIndicator(10, config.ScreenHeight-44),
		hud:            ui.NewHUD(10, 20, fontFace),
		fontFace:       fontFace,
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g, g.hud))
		return
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			b.command(g.game)
		}
	}

	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, snap)
	g.hud.Draw(screen, snap)
	g.levelIndicator.Draw(screen, snap.Level, defs.LevelCount(), snap.Kills, snap.Config.KillQuota)
	g.indicator.Draw(screen, g.phaseColor(snap.GameOver))
}

func (g *GameState) phaseColor(over bool) color.RGBA {
	if over {
		return config.GameOverColor
	}
	return config.PlayingColor
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
