package audit

import "log"

const (
	ActionAppointmentCreated     = "appointment_created"
	ActionAppointmentRescheduled = "appointment_rescheduled"
	ActionAppointmentCancelled   = "appointment_cancelled"
	ActionAppointmentConfirmed   = "appointment_confirmed"
	ActionAppointmentCompleted   = "appointment_completed"
	ActionAppointmentConflict    = "appointment_conflict"
)

type Event struct {
	BarbershopID uint
	ActorID      *uint
	ActorType    string
	Action       string
	Entity       string
	EntityID     *uint
	Metadata     any
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
		if d.logger == nil {
			continue
		}
		if err := d.logger.Log(
			ev.BarbershopID,
			ev.ActorID,
			ev.ActorType,
			ev.Action,
			ev.Entity,
			ev.EntityID,
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
		// fila cheia: auditoria nunca derruba a API
		log.Println("audit queue full, dropping event")
	}
}
