package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func InitialStatus() Status {
	return StatusPending
}

// BlockingStatuses são os status que ocupam um slot na agenda.
// Agendamentos cancelados ou concluídos liberam o horário.
func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}
