package component

// Phase — фаза игровой сессии
type Phase int

const (
	PlayingPhase Phase = iota
	GameOverPhase
)

// GameState — компонент для хранения состояния игры
type GameState struct {
	Phase Phase
}

// IsOver сообщает, достигнуто ли терминальное состояние.
func (s *GameState) IsOver() bool {
	return s.Phase == GameOverPhase
}
