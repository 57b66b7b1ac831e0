package validation

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("start_date", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("start_date", "2024-03-05T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("start_date", "05/03/2024")
	require.Error(t, err)
	assert.True(t, Is(err))
	assert.Contains(t, err.Error(), "start_date")
}

func TestFirstReturnsEarliestFailure(t *testing.T) {
	err := First(
		nil,
		Positive("rent_amount", decimal.Zero, "Rent amount must be greater than 0"),
		Required("name", "", "Name is required"),
	)
	require.Error(t, err)
	assert.Equal(t, "Rent amount must be greater than 0", err.Error())

	var ve *Error
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &ve))
	assert.Equal(t, "rent_amount", ve.Field)
}

func TestNumericChecks(t *testing.T) {
	assert.NoError(t, NonNegative("deposit", decimal.Zero, "bad"))
	assert.Error(t, NonNegative("deposit", decimal.NewFromInt(-1), "bad"))
	assert.NoError(t, Positive("amount", decimal.RequireFromString("0.01"), "bad"))
	assert.Error(t, Required("name", "   ", "Name is required"))
}
