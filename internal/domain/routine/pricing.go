package routine

// EffectivePrice returns the unit price used for all cost math:
// the locked price when one exists, otherwise the live catalog price.
func EffectivePrice(r *Routine, livePrice float64) float64 {
	if r.PriceLocked != nil {
		return *r.PriceLocked
	}
	return livePrice
}

// Savings returns how much the price lock has saved so far:
// (live - locked) per unit, across quantity and completed cycles.
// A lock above the current live price never produces negative savings.
func Savings(r *Routine, livePrice float64) float64 {
	if r.PriceLocked == nil {
		return 0
	}
	perUnit := livePrice - *r.PriceLocked
	if perUnit < 0 {
		return 0
	}
	return perUnit * float64(r.Quantity) * float64(r.OrdersCompleted)
}
