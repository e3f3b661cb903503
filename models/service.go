package models

// Service is a catalog entry. Services are created active, can be toggled
// inactive, and are never deleted.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"` // in minutes
	Description string  `json:"description"`
	IsActive    bool    `json:"isActive"`
}
