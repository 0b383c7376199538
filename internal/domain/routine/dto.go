package routine

import "time"

// DateLayout is the wire format for delivery dates.
const DateLayout = "2006-01-02"

// CreateRequest is sent by a user to start a new routine delivery.
type CreateRequest struct {
	ProductID          int64  `json:"product_id" validate:"required"`
	Quantity           int    `json:"quantity" validate:"required"`
	Frequency          string `json:"frequency" validate:"required"`
	CustomIntervalDays *int   `json:"custom_interval_days,omitempty"`

	DeliveryDay  string `json:"delivery_day,omitempty"`
	DeliveryTime string `json:"delivery_time,omitempty"`

	// LockPrice freezes the current catalog price at creation time.
	LockPrice bool `json:"lock_price,omitempty"`

	AutoOrder           *bool `json:"auto_order,omitempty"`
	MaxOrders           *int  `json:"max_orders,omitempty"`
	NotificationEnabled *bool `json:"notification_enabled,omitempty"`
	SkipHolidays        *bool `json:"skip_holidays,omitempty"`

	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// UpdateRequest is a partial patch: only non-nil fields are applied.
// The merge is explicit field by field, with no runtime introspection
// of arbitrary input maps.
type UpdateRequest struct {
	Quantity           *int    `json:"quantity,omitempty"`
	Frequency          *string `json:"frequency,omitempty"`
	CustomIntervalDays *int    `json:"custom_interval_days,omitempty"`

	DeliveryDay  *string `json:"delivery_day,omitempty"`
	DeliveryTime *string `json:"delivery_time,omitempty"`

	IsPaused *bool `json:"is_paused,omitempty"`

	AutoOrder           *bool   `json:"auto_order,omitempty"`
	MaxOrders           *int    `json:"max_orders,omitempty"`
	NotificationEnabled *bool   `json:"notification_enabled,omitempty"`
	SkipHolidays        *bool   `json:"skip_holidays,omitempty"`
	EndDate             *string `json:"end_date,omitempty"`
}

// empty reports whether the patch carries no fields at all.
func (u *UpdateRequest) empty() bool {
	return u.Quantity == nil && u.Frequency == nil && u.CustomIntervalDays == nil &&
		u.DeliveryDay == nil && u.DeliveryTime == nil && u.IsPaused == nil &&
		u.AutoOrder == nil && u.MaxOrders == nil && u.NotificationEnabled == nil &&
		u.SkipHolidays == nil && u.EndDate == nil
}

// Response is the public representation of a routine, joined with its
// product and enriched with the read-side projections.
type Response struct {
	Routine

	ProductName string  `json:"product_name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	SalePrice   float64 `json:"sale_price"`

	EffectivePrice float64 `json:"effective_price"`
	DaysUntilNext  float64 `json:"days_until_next"`
	MonthlyCost    float64 `json:"monthly_cost"`
	TotalSavings   float64 `json:"total_savings"`
}

// ListResponse pairs a user's routines with the account-wide analytics.
type ListResponse struct {
	Routines  []Response `json:"routines"`
	Analytics Summary    `json:"analytics"`
}

func toResponse(row WithProduct, now time.Time) Response {
	return Response{
		Routine:        row.Routine,
		ProductName:    row.ProductName,
		Brand:          row.Brand,
		Category:       row.Category,
		SalePrice:      row.SalePrice,
		EffectivePrice: EffectivePrice(&row.Routine, row.SalePrice),
		DaysUntilNext:  row.NextDeliveryDate.Sub(DateOnly(now)).Hours() / 24,
		MonthlyCost:    round2(MonthlyCost(&row.Routine, row.SalePrice)),
		TotalSavings:   round2(Savings(&row.Routine, row.SalePrice)),
	}
}
