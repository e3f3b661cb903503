package models

// Client is a salon client record. Dates are calendar-date strings in
// yyyy-MM-dd form, matching the persisted encoding.
//
// TotalVisits and TotalSpent are informational counters set at creation;
// no operation recomputes them from appointments or transactions.
type Client struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Phone       string           `json:"phone"`
	Email       string           `json:"email,omitempty"`
	Photo       string           `json:"photo,omitempty"`
	Notes       string           `json:"notes"`
	Birthday    string           `json:"birthday,omitempty"`
	LastVisit   string           `json:"lastVisit"`
	TotalVisits int              `json:"totalVisits"`
	TotalSpent  float64          `json:"totalSpent"`
	Preferences []string         `json:"preferences"`
	History     []ServiceHistory `json:"history"`
}

// ServiceHistory is one past visit, embedded in and owned by a single Client.
// Services are free-text names, not references into the service catalog.
type ServiceHistory struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Services []string `json:"services"`
	Total    float64  `json:"total"`
	Notes    string   `json:"notes"`
	Photos   []string `json:"photos,omitempty"`
}
