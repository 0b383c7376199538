package routine

import "math"

// Summary is the account-wide read-side projection over all of a
// user's routines. Pure derivation, safe to recompute on every request.
type Summary struct {
	TotalMonthlySpend float64        `json:"total_monthly_spend"`
	ActiveRoutines    int            `json:"active_routines"`
	PausedRoutines    int            `json:"paused_routines"`
	TotalSavings      float64        `json:"total_savings"`
	TotalRoutines     int            `json:"total_routines"`
	TotalDeliveries   int            `json:"total_deliveries"`
	AvgLockedPrice    float64        `json:"avg_locked_price"`
	CategoryBreakdown map[string]int `json:"category_breakdown"`
}

// cyclesPerMonth maps a cadence to its projected deliveries per month.
// Exhaustive switch so a new cadence is a compile-visible change.
func cyclesPerMonth(freq Frequency, customIntervalDays *int) float64 {
	switch freq {
	case FreqDaily:
		return 30
	case FreqWeekly:
		return 4
	case FreqBiweekly:
		return 2
	case FreqMonthly:
		return 1
	case FreqCustom:
		if customIntervalDays != nil && *customIntervalDays > 0 {
			return 30 / float64(*customIntervalDays)
		}
		return 30.0 / 7
	}
	return 1
}

// MonthlyCost projects what one routine costs per month at its
// effective price.
func MonthlyCost(r *Routine, livePrice float64) float64 {
	return EffectivePrice(r, livePrice) * float64(r.Quantity) * cyclesPerMonth(r.Frequency, r.CustomIntervalDays)
}

// Summarize folds a user's routines (joined with their live product
// data) into account-wide totals. An empty slice yields all zeros.
func Summarize(rows []WithProduct) Summary {
	sum := Summary{CategoryBreakdown: make(map[string]int)}

	lockedCount := 0
	lockedTotal := 0.0

	for i := range rows {
		row := &rows[i]
		sum.TotalRoutines++
		sum.TotalDeliveries += row.OrdersCompleted
		sum.TotalSavings += Savings(&row.Routine, row.SalePrice)

		if row.IsPaused {
			sum.PausedRoutines++
		}
		if row.IsScheduled() {
			sum.ActiveRoutines++
			sum.TotalMonthlySpend += MonthlyCost(&row.Routine, row.SalePrice)
		}
		if row.IsActive {
			sum.CategoryBreakdown[row.Category]++
		}
		if row.PriceLocked != nil {
			lockedCount++
			lockedTotal += *row.PriceLocked
		}
	}

	if lockedCount > 0 {
		sum.AvgLockedPrice = round2(lockedTotal / float64(lockedCount))
	}
	sum.TotalMonthlySpend = round2(sum.TotalMonthlySpend)
	sum.TotalSavings = round2(sum.TotalSavings)
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
