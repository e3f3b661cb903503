package models

// AppointmentStatus is the lifecycle state of an appointment. Pending and
// confirmed appointments advance forward; cancelled is terminal.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment references its client by id plus a denormalized name; the
// reference is informal and never enforced against the clients collection.
// Time is a zero-padded 24h HH:MM string, so lexicographic order is
// chronological order.
type Appointment struct {
	ID         string            `json:"id"`
	ClientID   string            `json:"clientId"`
	ClientName string            `json:"clientName"`
	Date       string            `json:"date"`
	Time       string            `json:"time"`
	Services   []string          `json:"services"`
	Duration   int               `json:"duration"`
	Status     AppointmentStatus `json:"status"`
	Notes      string            `json:"notes"`
	Reminder   bool              `json:"reminder"`
}
