package tui

import (
	"github.com/gdamore/tcell/v2"

	"go-tempest/internal/interfaces"
)

// Action — что хост должен сделать после нажатия.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
)

// HandleKey передаёт нажатие в controls. Стрелки меняют линию, пробел
// стреляет, z — суперзаппер, p — пауза, Esc и Ctrl-C — выход.
func HandleKey(key tcell.Key, ch rune, controls interfaces.Controls) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		controls.MoveLaneForward()
	case tcell.KeyRight:
		controls.MoveLaneBackward()
	case tcell.KeyRune:
		switch ch {
		case ' ':
			controls.Fire()
		case 'z', 'Z':
			controls.UseSuperzapper()
		case 'p', 'P':
			return ActionPause
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}
