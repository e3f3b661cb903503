// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone checks if a phone number is in a valid international format
// after stripping common separators.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phonePattern.MatchString(cleaned)
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate checks the yyyy-MM-dd shape used by all calendar-date fields.
func ValidateDate(date string) bool {
	return datePattern.MatchString(date)
}

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidateTime checks the zero-padded 24h HH:MM shape used by appointments.
func ValidateTime(t string) bool {
	return timePattern.MatchString(t)
}
