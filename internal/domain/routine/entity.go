package routine

import (
	"time"
)

// Frequency is the recurrence cadence of a routine delivery.
type Frequency string

const (
	FreqDaily    Frequency = "daily"
	FreqWeekly   Frequency = "weekly"
	FreqBiweekly Frequency = "biweekly"
	FreqMonthly  Frequency = "monthly"
	FreqCustom   Frequency = "custom"
)

// Valid reports whether f is one of the five recognized cadences.
func (f Frequency) Valid() bool {
	switch f {
	case FreqDaily, FreqWeekly, FreqBiweekly, FreqMonthly, FreqCustom:
		return true
	}
	return false
}

// Routine is a standing order that auto-generates deliveries on a schedule.
// Every read and write is scoped to UserID: ownership is checked before
// anything is returned or applied.
type Routine struct {
	ID        int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64 `gorm:"column:user_id;index" json:"user_id"`
	ProductID int64 `gorm:"column:product_id" json:"product_id"`

	Quantity           int       `gorm:"column:quantity" json:"quantity"`
	Frequency          Frequency `gorm:"column:frequency" json:"frequency"`
	CustomIntervalDays *int      `gorm:"column:custom_interval_days" json:"custom_interval_days,omitempty"`

	// Advisory hints for the dispatcher; not used in date arithmetic.
	DeliveryDay  string `gorm:"column:delivery_day" json:"delivery_day"`
	DeliveryTime string `gorm:"column:delivery_time" json:"delivery_time"`

	// NextDeliveryDate is the single source of truth for when the next
	// cycle fires. Date-only precision.
	NextDeliveryDate time.Time  `gorm:"column:next_delivery_date;index" json:"next_delivery_date"`
	LastDeliveryDate *time.Time `gorm:"column:last_delivery_date" json:"last_delivery_date,omitempty"`

	IsActive bool `gorm:"column:is_active" json:"is_active"`
	IsPaused bool `gorm:"column:is_paused" json:"is_paused"`

	AutoOrder       bool `gorm:"column:auto_order" json:"auto_order"`
	MaxOrders       *int `gorm:"column:max_orders" json:"max_orders,omitempty"`
	OrdersCompleted int  `gorm:"column:orders_completed" json:"orders_completed"`

	// PriceLocked, when set, overrides the live catalog price for all
	// cost calculations.
	PriceLocked *float64 `gorm:"column:price_locked" json:"price_locked,omitempty"`

	NotificationEnabled bool `gorm:"column:notification_enabled" json:"notification_enabled"`
	SkipHolidays        bool `gorm:"column:skip_holidays" json:"skip_holidays"`

	StartDate time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate   *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Routine) TableName() string { return "routine_deliveries" }

// IsScheduled reports whether the dispatcher should consider this routine.
func (r *Routine) IsScheduled() bool {
	return r.IsActive && !r.IsPaused
}

// CapReached reports whether the lifetime order cap has been hit.
func (r *Routine) CapReached() bool {
	return r.MaxOrders != nil && r.OrdersCompleted >= *r.MaxOrders
}
