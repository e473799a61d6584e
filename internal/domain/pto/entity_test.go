package pto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return parsed
}

func TestPTORequest_Overlaps(t *testing.T) {
	t.Parallel()

	req := PTORequest{
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"window inside request", "2026-03-03", "2026-03-04", true},
		{"request inside window", "2026-03-01", "2026-03-10", true},
		{"shared start boundary", "2026-02-25", "2026-03-02", true},
		{"shared end boundary", "2026-03-06", "2026-03-10", true},
		{"window before", "2026-02-20", "2026-03-01", false},
		{"window after", "2026-03-07", "2026-03-10", false},
		{"single day hit", "2026-03-04", "2026-03-04", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, req.Overlaps(day(t, tt.from), day(t, tt.to)))
		})
	}
}

func TestInclusiveDays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, InclusiveDays(day(t, "2026-03-02"), day(t, "2026-03-02")))
	assert.Equal(t, 5, InclusiveDays(day(t, "2026-03-02"), day(t, "2026-03-06")))
	assert.Equal(t, 31, InclusiveDays(day(t, "2026-01-01"), day(t, "2026-01-31")))
}

func TestStatus_Terminal(t *testing.T) {
	t.Parallel()

	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusDenied.Terminal())
}
