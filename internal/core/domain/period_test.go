package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeEndAddsOneDayToEndDate(t *testing.T) {
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	p := Period{
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Status:    PeriodClosed,
	}

	got := p.ScopeEnd()

	require.NotNil(t, got)
	// The bound pads the date-only end so the whole last day stays in range.
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), *got)
}

func TestScopeEndNilWhileOpen(t *testing.T) {
	p := Period{
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:    PeriodOpen,
	}

	assert.Nil(t, p.ScopeEnd())
}

func TestScopeEndCrossesMonthBoundary(t *testing.T) {
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	p := Period{EndDate: &end, Status: PeriodClosed}

	got := p.ScopeEnd()

	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *got)
}
