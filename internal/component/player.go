// internal/component/player.go
package component

// Player хранит состояние корабля игрока. Позиция всегда совпадает
// с внешней точкой текущей линии.
type Player struct {
	Lane               int
	Position           Position
	Score              int
	SuperzapperCharges int
}
