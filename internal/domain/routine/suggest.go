package routine

import (
	"sort"
	"time"
)

// maxSuggestions caps the candidate list; there is no pagination.
const maxSuggestions = 20

// minOrderCount filters out one-off purchases.
const minOrderCount = 2

// PastOrder is one historical order joined with its product, as
// provided by the order history source.
type PastOrder struct {
	ProductID   int64
	ProductName string
	Brand       string
	SalePrice   float64
	Category    string
	Quantity    int
	OrderedAt   time.Time
}

// Suggestion is a candidate product for a new routine, mined from the
// user's order history.
type Suggestion struct {
	ProductID               int64     `json:"product_id"`
	ProductName             string    `json:"product_name"`
	Brand                   string    `json:"brand"`
	SalePrice               float64   `json:"sale_price"`
	Category                string    `json:"category"`
	OrderCount              int       `json:"order_count"`
	AvgQuantity             float64   `json:"avg_quantity"`
	LastOrdered             time.Time `json:"last_ordered"`
	DaysSinceLastOrder      float64   `json:"days_since_last_order"`
	RecommendedFrequency    Frequency `json:"recommended_frequency"`
	PotentialMonthlySavings float64   `json:"potential_monthly_savings"`
}

// Suggest mines history for products ordered at least twice, infers a
// cadence from the ordering rhythm, and ranks by order count (ties go
// to the more recently ordered product). Recomputed fresh per call;
// no suggestion state is persisted.
func Suggest(now time.Time, history []PastOrder) []Suggestion {
	byProduct := make(map[int64]*Suggestion)
	totalQty := make(map[int64]int)

	for _, o := range history {
		s, ok := byProduct[o.ProductID]
		if !ok {
			s = &Suggestion{
				ProductID:   o.ProductID,
				ProductName: o.ProductName,
				Brand:       o.Brand,
				SalePrice:   o.SalePrice,
				Category:    o.Category,
			}
			byProduct[o.ProductID] = s
		}
		s.OrderCount++
		totalQty[o.ProductID] += o.Quantity
		if o.OrderedAt.After(s.LastOrdered) {
			s.LastOrdered = o.OrderedAt
		}
	}

	out := make([]Suggestion, 0, len(byProduct))
	for id, s := range byProduct {
		if s.OrderCount < minOrderCount {
			continue
		}
		s.AvgQuantity = float64(totalQty[id]) / float64(s.OrderCount)
		s.DaysSinceLastOrder = now.Sub(s.LastOrdered).Hours() / 24
		if s.DaysSinceLastOrder < 0 {
			s.DaysSinceLastOrder = 0
		}
		s.RecommendedFrequency = inferFrequency(s.DaysSinceLastOrder, s.OrderCount)
		s.PotentialMonthlySavings = round2(s.SalePrice * 0.05 * s.AvgQuantity * 4)
		out = append(out, *s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderCount != out[j].OrderCount {
			return out[i].OrderCount > out[j].OrderCount
		}
		return out[i].DaysSinceLastOrder < out[j].DaysSinceLastOrder
	})

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// inferFrequency derives a cadence from the average gap between
// orders. With no usable gap the default is weekly.
func inferFrequency(daysSinceLast float64, orderCount int) Frequency {
	if daysSinceLast <= 0 || orderCount < 2 {
		return FreqWeekly
	}
	avgDaysBetween := daysSinceLast / float64(orderCount-1)
	switch {
	case avgDaysBetween <= 3:
		return FreqDaily
	case avgDaysBetween <= 10:
		return FreqWeekly
	case avgDaysBetween <= 20:
		return FreqBiweekly
	default:
		return FreqMonthly
	}
}
