package catalog

import "time"

// Product is the catalog read model. This engine never writes it;
// catalog ingestion lives elsewhere.
type Product struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name" json:"name"`
	Brand       string    `gorm:"column:brand;index" json:"brand"`
	SalePrice   float64   `gorm:"column:sale_price" json:"sale_price"`
	MarketPrice float64   `gorm:"column:market_price" json:"market_price"`
	Category    string    `gorm:"column:category;index" json:"category"`
	SubCategory string    `gorm:"column:sub_category" json:"sub_category"`
	Rating      float64   `gorm:"column:rating" json:"rating"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string { return "products" }
