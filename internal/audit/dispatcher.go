package audit

import "log"

// Actores que pueden originar un evento.
const (
	ActorDoctor  = "doctor"
	ActorPatient = "patient"
	ActorSystem  = "system"
)

type Event struct {
	ActorType string
	ActorID   *uint
	Action    string
	Entity    string
	EntityID  *uint
	RequestID string
	Metadata  any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ActorType,
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.RequestID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// cola llena: la auditoría nunca tumba la API
		log.Println("audit queue full, dropping event")
	}
}
