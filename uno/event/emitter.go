package event

// Emitter delivers payloads of one event to its handlers in subscription order.
type Emitter[P any] struct {
	handlers []func(P)
}

func (e *Emitter[P]) AddListener(handler func(P)) {
	e.handlers = append(e.handlers, handler)
}

func (e *Emitter[P]) Emit(payload P) {
	for _, handler := range e.handlers {
		handler(payload)
	}
}
