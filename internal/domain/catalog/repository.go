package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// browseLimit bounds the catalog listing; there is no pagination.
const browseLimit = 100

// ListFilter narrows the catalog listing. Zero values mean no filter.
type ListFilter struct {
	Category string
	Brand    string
	Search   string
}

// Repository provides read-only product lookups.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Product, error)

	// GetPrice returns nil (not an error) when the product does not
	// resolve, so callers can map the miss to their own taxonomy.
	GetPrice(ctx context.Context, productID int64) (*float64, error)
	GetCategory(ctx context.Context, productID int64) (string, error)

	// List returns up to browseLimit products matching the filter,
	// best rated first.
	List(ctx context.Context, filter ListFilter) ([]Product, error)

	// Related returns up to limit other products from the same category.
	Related(ctx context.Context, category string, excludeID int64, limit int) ([]Product, error)

	Categories(ctx context.Context) ([]string, error)
	Brands(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetPrice(ctx context.Context, productID int64) (*float64, error) {
	p, err := r.GetByID(ctx, productID)
	if err != nil || p == nil {
		return nil, err
	}
	return &p.SalePrice, nil
}

func (r *repository) GetCategory(ctx context.Context, productID int64) (string, error) {
	p, err := r.GetByID(ctx, productID)
	if err != nil || p == nil {
		return "", err
	}
	return p.Category, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Product, error) {
	q := r.db.WithContext(ctx).Model(&Product{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Brand != "" {
		q = q.Where("brand = ?", filter.Brand)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR brand LIKE ?", like, like)
	}

	var products []Product
	err := q.Order("rating DESC").Limit(browseLimit).Find(&products).Error
	return products, err
}

func (r *repository) Related(ctx context.Context, category string, excludeID int64, limit int) ([]Product, error) {
	var products []Product
	err := r.db.WithContext(ctx).
		Where("category = ? AND id != ?", category, excludeID).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *repository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *repository) Brands(ctx context.Context) ([]string, error) {
	var brands []string
	err := r.db.WithContext(ctx).Model(&Product{}).
		Distinct("brand").
		Order("brand ASC").
		Limit(50).
		Pluck("brand", &brands).Error
	return brands, err
}
