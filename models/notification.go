package models

type NotificationType string

const (
	NotifyAppointment NotificationType = "appointment"
	NotifyBirthday    NotificationType = "birthday"
	NotifyLowStock    NotificationType = "lowStock"
	NotifyReminder    NotificationType = "reminder"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifyAppointment, NotifyBirthday, NotifyLowStock, NotifyReminder:
		return true
	}
	return false
}

// Notification is generated from the other collections (by the notifier
// service) and only ever mutated through its read flag. Date is a local
// timestamp string in yyyy-MM-ddTHH:mm:ss form.
type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    string           `json:"date"`
	Read    bool             `json:"read"`
}
