package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+52 555-0101"))
	assert.True(t, ValidatePhone("5550101"))
	assert.False(t, ValidatePhone("abc"))
	assert.False(t, ValidatePhone(""))
}

func TestValidateDate(t *testing.T) {
	assert.True(t, ValidateDate("2026-01-20"))
	assert.False(t, ValidateDate("20/01/2026"))
	assert.False(t, ValidateDate("2026-1-2"))
}

func TestValidateTime(t *testing.T) {
	assert.True(t, ValidateTime("09:00"))
	assert.True(t, ValidateTime("23:59"))
	assert.False(t, ValidateTime("9:00"))
	assert.False(t, ValidateTime("24:00"))
}
