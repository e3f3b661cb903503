package models

// TransactionType partitions transactions into income and expenses. Amounts
// are stored positive; the sign is carried by the type.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

type Transaction struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	ClientID      string          `json:"clientId,omitempty"`
	AppointmentID string          `json:"appointmentId,omitempty"`
}
