// internal/event/event.go
package event

// EventType — тип события
type EventType string

const (
	Quit   EventType = "quit"
	Resize EventType = "resize"
)

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// ResizeData — сырые размеры из события окна, ещё без ограничений
type ResizeData struct {
	Width  int
	Height int
}

// NewQuit создаёт событие выхода
func NewQuit() Event {
	return Event{Type: Quit}
}

// NewResize создаёт событие изменения размера
func NewResize(width, height int) Event {
	return Event{Type: Resize, Data: ResizeData{Width: width, Height: height}}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — диспетчер событий
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

// Dispatch — отправка события всем подписчикам в порядке подписки
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// Drain отправляет накопленные события по очереди
func (d *Dispatcher) Drain(events []Event) {
	for _, e := range events {
		d.Dispatch(e)
	}
}
