package notification

import (
	"context"

	"github.com/rs/zerolog"
)

type Event struct {
	UserID  string
	Type    string
	Message string
}

// Dispatcher entrega notificações fora do caminho da request.
// Fila cheia descarta: notificação nunca derruba um booking.
type Dispatcher struct {
	store *Store
	log   zerolog.Logger
	queue chan Event
}

func NewDispatcher(store *Store, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		store: store,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.store.Save(context.Background(), ev.UserID, ev.Type, ev.Message); err != nil {
			d.log.Error().Err(err).Str("type", ev.Type).Msg("notification save failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("type", ev.Type).Msg("notification queue full, dropping event")
	}
}

// Close drena a fila no shutdown.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	close(d.queue)
}
