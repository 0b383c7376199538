package routine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func TestNextDelivery_FixedOffsets(t *testing.T) {
	anchor := date(2024, time.January, 10)

	tests := []struct {
		name string
		freq Frequency
		want time.Time
	}{
		{"daily", FreqDaily, date(2024, time.January, 11)},
		{"weekly", FreqWeekly, date(2024, time.January, 17)},
		{"biweekly", FreqBiweekly, date(2024, time.January, 24)},
		{"monthly", FreqMonthly, date(2024, time.February, 9)}, // fixed 30 days, not calendar month
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDelivery(tt.freq, anchor, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextDelivery_Custom(t *testing.T) {
	anchor := date(2024, time.March, 1)

	got, err := NextDelivery(FreqCustom, anchor, intPtr(5))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 6), got)
}

func TestNextDelivery_CustomRequiresPositiveInterval(t *testing.T) {
	anchor := date(2024, time.March, 1)

	_, err := NextDelivery(FreqCustom, anchor, nil)
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = NextDelivery(FreqCustom, anchor, intPtr(0))
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = NextDelivery(FreqCustom, anchor, intPtr(-3))
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestNextDelivery_UnknownFrequency(t *testing.T) {
	_, err := NextDelivery(Frequency("fortnightly"), date(2024, time.March, 1), nil)
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestNextDelivery_TruncatesTimeOfDay(t *testing.T) {
	anchor := time.Date(2024, time.June, 1, 18, 45, 12, 0, time.UTC)

	got, err := NextDelivery(FreqWeekly, anchor, nil)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.June, 8), got)
}

func TestNextDelivery_AdvancesFromPastAnchor(t *testing.T) {
	// A stale next_delivery_date advances exactly one cycle, never more.
	stale := date(2020, time.January, 1)

	got, err := NextDelivery(FreqMonthly, stale, nil)
	require.NoError(t, err)
	assert.Equal(t, date(2020, time.January, 31), got)
}
