package routine

import "time"

// NextDelivery computes the next delivery date one cycle after anchor.
//
// Offsets are fixed day counts: daily +1, weekly +7, biweekly +14,
// monthly +30 (a documented approximation, not calendar-month aware),
// custom +customIntervalDays. The anchor is the creation date on first
// computation and the current next_delivery_date when skipping.
func NextDelivery(freq Frequency, anchor time.Time, customIntervalDays *int) (time.Time, error) {
	anchor = DateOnly(anchor)

	switch freq {
	case FreqDaily:
		return anchor.AddDate(0, 0, 1), nil
	case FreqWeekly:
		return anchor.AddDate(0, 0, 7), nil
	case FreqBiweekly:
		return anchor.AddDate(0, 0, 14), nil
	case FreqMonthly:
		return anchor.AddDate(0, 0, 30), nil
	case FreqCustom:
		if customIntervalDays == nil || *customIntervalDays < 1 {
			return time.Time{}, ErrInvalidFrequency
		}
		return anchor.AddDate(0, 0, *customIntervalDays), nil
	}
	return time.Time{}, ErrInvalidFrequency
}

// DateOnly truncates t to midnight UTC. Delivery dates carry no
// time-of-day component; delivery_time is a free-form hint.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
