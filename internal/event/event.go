// internal/event/event.go
package event

import (
	"go-tempest/internal/defs"
	"go-tempest/internal/types"
	"go-tempest/pkg/web"
)

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Одна из структур ниже или nil
}

// KillData сопровождает EnemyKilled и EnemyEscaped.
type KillData struct {
	EnemyID  types.EntityID
	Lane     int
	Position web.Point
	Type     defs.EnemyType
}

// LevelData сопровождает LevelAdvanced и PlayerDestroyed.
type LevelData struct {
	Index  int
	Config defs.LevelConfig
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронный диспетчер событий. Подписчики вызываются
// в порядке подписки внутри того же тика.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
