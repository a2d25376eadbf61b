// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tempest/internal/config"
	"go-tempest/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState останавливает симуляцию: Update игры не вызывается,
// пока пауза не снята.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	hud           *ui.HUD
}

func NewPauseState(sm *StateMachine, prevState State, hud *ui.HUD) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		hud:           hud,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)
	s.hud.DrawCentered(screen, "PAUSED", config.PausedColor)
}

func (s *PauseState) Exit() {}
