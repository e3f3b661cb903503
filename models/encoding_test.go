package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalFieldsStayAbsent(t *testing.T) {
	client := Client{
		ID:          "1",
		Name:        "Carmen Silva",
		Phone:       "+52 555-0104",
		LastVisit:   "2026-01-19",
		Preferences: []string{},
		History:     []ServiceHistory{},
	}

	data, err := json.Marshal(client)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))

	// Optional fields without a value serialize as absent, not null.
	assert.NotContains(t, fields, "email")
	assert.NotContains(t, fields, "birthday")
	assert.NotContains(t, fields, "photo")
	assert.Contains(t, fields, "notes")
	assert.Contains(t, fields, "totalVisits")
}

func TestTransactionOptionalReferences(t *testing.T) {
	tx := Transaction{
		ID:       "t1",
		Date:     "2026-01-19",
		Type:     TypeExpense,
		Amount:   250,
		Category: "Gastos",
	}

	data, err := json.Marshal(tx)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.NotContains(t, fields, "clientId")
	assert.NotContains(t, fields, "appointmentId")
	assert.JSONEq(t, `"expense"`, string(fields["type"]))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, AppointmentStatus("paused").Valid())

	assert.True(t, TypeIncome.Valid())
	assert.False(t, TransactionType("transfer").Valid())

	assert.True(t, NotifyLowStock.Valid())
	assert.False(t, NotificationType("promo").Valid())
}
