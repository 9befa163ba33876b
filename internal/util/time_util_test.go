package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	require.Equal(t, 0, DaysBetween(NewDate(2024, 6, 15), NewDate(2024, 6, 15)))
	require.Equal(t, 1, DaysBetween(NewDate(2024, 6, 15), NewDate(2024, 6, 16)))
	require.Equal(t, 365, DaysBetween(NewDate(2023, 1, 1), NewDate(2024, 1, 1)))
	// 2024 is a leap year
	require.Equal(t, 366, DaysBetween(NewDate(2024, 1, 1), NewDate(2025, 1, 1)))

	// time-of-day is ignored
	morning := time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC)
	night := time.Date(2024, 6, 16, 23, 0, 0, 0, time.UTC)
	require.Equal(t, 1, DaysBetween(morning, night))
}

func TestTaxYearBounds(t *testing.T) {
	start, end := TaxYearBounds(2024)
	require.Equal(t, NewDate(2024, 1, 1), start)
	require.Equal(t, NewDate(2025, 1, 1), end)
}
