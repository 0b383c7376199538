package order

import (
	"context"
	"time"

	"gorm.io/gorm"

	"swippe/internal/domain/routine"
)

// Repository is the order history source and the sink for order
// requests generated by fired routine cycles.
type Repository interface {
	// ListOrders returns the user's history joined with products,
	// newest first. Feeds the suggestion engine.
	ListOrders(ctx context.Context, userID int64) ([]routine.PastOrder, error)

	// PlaceOrder appends an order request. Payment and fulfillment
	// happen downstream.
	PlaceOrder(ctx context.Context, userID, productID int64, quantity int, unitPrice float64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListOrders(ctx context.Context, userID int64) ([]routine.PastOrder, error) {
	var rows []struct {
		ProductID   int64     `gorm:"column:product_id"`
		ProductName string    `gorm:"column:product_name"`
		Brand       string    `gorm:"column:brand"`
		SalePrice   float64   `gorm:"column:sale_price"`
		Category    string    `gorm:"column:category"`
		Quantity    int       `gorm:"column:quantity"`
		OrderedAt   time.Time `gorm:"column:ordered_at"`
	}
	err := r.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.product_id, p.name AS product_name, p.brand, p.sale_price, p.category, o.quantity, o.ordered_at").
		Joins("JOIN products p ON p.id = o.product_id").
		Where("o.user_id = ?", userID).
		Order("o.ordered_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	history := make([]routine.PastOrder, 0, len(rows))
	for _, row := range rows {
		history = append(history, routine.PastOrder{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Brand:       row.Brand,
			SalePrice:   row.SalePrice,
			Category:    row.Category,
			Quantity:    row.Quantity,
			OrderedAt:   row.OrderedAt,
		})
	}
	return history, nil
}

func (r *repository) PlaceOrder(ctx context.Context, userID, productID int64, quantity int, unitPrice float64) error {
	return r.db.WithContext(ctx).Create(&Order{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Status:    StatusPlaced,
		OrderedAt: time.Now(),
	}).Error
}
