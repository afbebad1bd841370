package gizmo

// Event is a multicast callback slot. The engine fires one per interaction
// transition (press, release); hosts may attach any number of listeners.
type Event struct {
	listeners []func()
}

// AddListener registers a callback; nil is ignored.
func (e *Event) AddListener(callback func()) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

// RemoveAllListeners clears the slot.
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls every registered listener in registration order.
func (e *Event) Invoke() {
	for _, listener := range e.listeners {
		listener()
	}
}

// ListenerCount reports how many listeners are attached.
func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is an Event carrying one argument, used for drag dispatch.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, listener := range e.listeners {
		listener(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
