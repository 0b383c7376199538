package routine

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WithProduct is a routine joined with its product's live catalog data.
type WithProduct struct {
	Routine

	ProductName string  `gorm:"column:product_name" json:"product_name"`
	Brand       string  `gorm:"column:brand" json:"brand"`
	SalePrice   float64 `gorm:"column:sale_price" json:"sale_price"`
	Category    string  `gorm:"column:category" json:"category"`
}

// Repository handles persistence for routine deliveries. Every method
// that takes a userID is ownership-scoped: a missing record and a
// record owned by someone else are both ErrUnauthorized.
type Repository interface {
	Create(ctx context.Context, r *Routine) error
	GetOwned(ctx context.Context, userID, id int64) (*Routine, error)
	ListWithProducts(ctx context.Context, userID int64) ([]WithProduct, error)

	// UpdateOwned runs mutate against the current row inside a
	// per-record transaction, so concurrent mutations of the same
	// routine never interleave partial writes.
	UpdateOwned(ctx context.Context, userID, id int64, mutate func(*Routine) error) (*Routine, error)

	Delete(ctx context.Context, userID, id int64) error

	// ListDue returns routines the external dispatcher should fire.
	ListDue(ctx context.Context, now time.Time) ([]Routine, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rt *Routine) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *repository) GetOwned(ctx context.Context, userID, id int64) (*Routine, error) {
	var rt Routine
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return &rt, nil
}

func (r *repository) ListWithProducts(ctx context.Context, userID int64) ([]WithProduct, error) {
	var rows []WithProduct
	err := r.db.WithContext(ctx).
		Table("routine_deliveries AS r").
		Select("r.*, p.name AS product_name, p.brand, p.sale_price, p.category").
		Joins("JOIN products p ON p.id = r.product_id").
		Where("r.user_id = ?", userID).
		Order("r.is_active DESC, r.next_delivery_date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) UpdateOwned(ctx context.Context, userID, id int64, mutate func(*Routine) error) (*Routine, error) {
	var rt Routine
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Where("id = ? AND user_id = ?", id, userID)
		// SQLite has no FOR UPDATE; its single-writer transactions
		// already serialize per-record mutations.
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		err := q.First(&rt).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnauthorized
			}
			return err
		}
		if err := mutate(&rt); err != nil {
			return err
		}
		rt.UpdatedAt = time.Now()
		return tx.Save(&rt).Error
	})
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *repository) Delete(ctx context.Context, userID, id int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Routine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUnauthorized
	}
	return nil
}

func (r *repository) ListDue(ctx context.Context, now time.Time) ([]Routine, error) {
	var due []Routine
	err := r.db.WithContext(ctx).
		Where("next_delivery_date <= ? AND is_active = ? AND is_paused = ?", DateOnly(now), true, false).
		Order("next_delivery_date ASC").
		Find(&due).Error
	return due, err
}
