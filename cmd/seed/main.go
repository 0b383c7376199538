package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"swippe/internal/config"
	"swippe/internal/database"
	"swippe/internal/domain/catalog"
	"swippe/internal/domain/order"
	"swippe/internal/domain/routine"
	"swippe/internal/domain/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&user.User{},
		&catalog.Product{},
		&order.Order{},
		&routine.Routine{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM routine_deliveries")
	db.Exec("DELETE FROM orders")
	db.Exec("DELETE FROM products")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	demo := user.User{
		Email:        "demo@swippe.app",
		PasswordHash: string(hash),
		Name:         "Demo User",
	}
	db.Create(&demo)
	log.Println("Demo user created: demo@swippe.app / demo123")

	// ================== PRODUCTS ==================
	log.Println("Creating products...")
	products := []catalog.Product{
		{Name: "Whole Milk 1L", Brand: "Amul", SalePrice: 62, MarketPrice: 68, Category: "Dairy", SubCategory: "Milk", Rating: 4.4},
		{Name: "Brown Bread", Brand: "Britannia", SalePrice: 45, MarketPrice: 50, Category: "Bakery", SubCategory: "Bread", Rating: 4.1},
		{Name: "Farm Eggs 12pk", Brand: "Keggs", SalePrice: 120, MarketPrice: 132, Category: "Dairy", SubCategory: "Eggs", Rating: 4.6},
		{Name: "Ground Coffee 250g", Brand: "Blue Tokai", SalePrice: 450, MarketPrice: 499, Category: "Beverages", SubCategory: "Coffee", Rating: 4.7},
		{Name: "Bananas 1kg", Brand: "Fresho", SalePrice: 55, MarketPrice: 60, Category: "Fruits", SubCategory: "Fresh Fruits", Rating: 4.0},
		{Name: "Dish Soap 500ml", Brand: "Vim", SalePrice: 99, MarketPrice: 110, Category: "Household", SubCategory: "Cleaning", Rating: 4.2},
	}
	for i := range products {
		db.Create(&products[i])
	}

	// ================== ORDER HISTORY ==================
	// Repeat purchases so the suggestion engine has signal: milk every
	// few days, coffee roughly monthly, one-off soap that must not
	// surface as a candidate.
	log.Println("Creating order history...")
	now := time.Now()
	history := []order.Order{
		{UserID: demo.ID, ProductID: products[0].ID, Quantity: 2, UnitPrice: 62, Status: order.StatusDelivered, OrderedAt: now.AddDate(0, 0, -9)},
		{UserID: demo.ID, ProductID: products[0].ID, Quantity: 1, UnitPrice: 62, Status: order.StatusDelivered, OrderedAt: now.AddDate(0, 0, -6)},
		{UserID: demo.ID, ProductID: products[0].ID, Quantity: 2, UnitPrice: 62, Status: order.StatusDelivered, OrderedAt: now.AddDate(0, 0, -3)},
		{UserID: demo.ID, ProductID: products[3].ID, Quantity: 1, UnitPrice: 450, Status: order.StatusDelivered, OrderedAt: now.AddDate(0, 0, -55)},
		{UserID: demo.ID, ProductID: products[3].ID, Quantity: 1, UnitPrice: 450, Status: order.StatusDelivered, OrderedAt: now.AddDate(0, 0, -25)},
		{UserID: demo.ID, ProductID: products[5].ID, Quantity: 1, UnitPrice: 99, Status: order.StatusDelivered, OrderedAt: now.AddDate(0, 0, -40)},
	}
	for i := range history {
		db.Create(&history[i])
	}

	// ================== SAMPLE ROUTINE ==================
	log.Println("Creating sample routine...")
	locked := products[0].SalePrice
	start := routine.DateOnly(now)
	next, _ := routine.NextDelivery(routine.FreqWeekly, start, nil)
	db.Create(&routine.Routine{
		UserID:              demo.ID,
		ProductID:           products[0].ID,
		Quantity:            2,
		Frequency:           routine.FreqWeekly,
		DeliveryTime:        "09:00",
		NextDeliveryDate:    next,
		IsActive:            true,
		AutoOrder:           true,
		NotificationEnabled: true,
		SkipHolidays:        true,
		PriceLocked:         &locked,
		StartDate:           start,
	})

	log.Println("Seed complete.")
}
