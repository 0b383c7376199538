package order

import "time"

// Status of an order request. The engine only ever creates orders in
// StatusPlaced; the fulfillment pipeline owns the rest.
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Order is one past or pending purchase. The routine engine reads the
// history for suggestions and appends order requests when cycles fire.
type Order struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;index" json:"user_id"`
	ProductID int64     `gorm:"column:product_id" json:"product_id"`
	Quantity  int       `gorm:"column:quantity" json:"quantity"`
	UnitPrice float64   `gorm:"column:unit_price" json:"unit_price"`
	Status    Status    `gorm:"column:status" json:"status"`
	OrderedAt time.Time `gorm:"column:ordered_at" json:"ordered_at"`
}

func (Order) TableName() string { return "orders" }
