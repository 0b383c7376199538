package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"swippe/internal/pkg/response"
)

const relatedLimit = 8

// Handler exposes the read-only product browse endpoints. Routine
// creation references products by ID from here.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List returns catalog products matching the query filters, plus the
// category and brand facets for building filter UIs.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	filter := ListFilter{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Search:   c.Query("search"),
	}

	products, err := h.repo.List(ctx, filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	categories, err := h.repo.Categories(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	brands, err := h.repo.Brands(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"products":   products,
		"categories": categories,
		"brands":     brands,
	})
}

// Get returns one product with up to eight related products from the
// same category.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid product ID")
		return
	}

	ctx := c.Request.Context()
	product, err := h.repo.GetByID(ctx, id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if product == nil {
		response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found")
		return
	}

	related, err := h.repo.Related(ctx, product.Category, product.ID, relatedLimit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"product": product,
		"related": related,
	})
}
