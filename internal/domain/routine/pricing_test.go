package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestEffectivePrice(t *testing.T) {
	unlocked := &Routine{Quantity: 1}
	assert.Equal(t, 80.0, EffectivePrice(unlocked, 80))

	locked := &Routine{Quantity: 1, PriceLocked: floatPtr(65)}
	assert.Equal(t, 65.0, EffectivePrice(locked, 80))
}

func TestSavings_LockedBelowLivePrice(t *testing.T) {
	// Locked at 120, live moved to 150, 2 completed cycles of qty 1.
	rt := &Routine{
		Quantity:        1,
		OrdersCompleted: 2,
		PriceLocked:     floatPtr(120),
	}
	assert.Equal(t, 60.0, Savings(rt, 150))
}

func TestSavings_NoLock(t *testing.T) {
	rt := &Routine{Quantity: 3, OrdersCompleted: 5}
	assert.Equal(t, 0.0, Savings(rt, 100))
}

func TestSavings_LockAboveLivePriceNeverNegative(t *testing.T) {
	rt := &Routine{
		Quantity:        2,
		OrdersCompleted: 4,
		PriceLocked:     floatPtr(110),
	}
	assert.Equal(t, 0.0, Savings(rt, 100))
}

func TestSavings_ScalesWithQuantityAndCycles(t *testing.T) {
	rt := &Routine{
		Quantity:        3,
		OrdersCompleted: 2,
		PriceLocked:     floatPtr(40),
	}
	// (50-40) * 3 * 2
	assert.Equal(t, 60.0, Savings(rt, 50))
}
