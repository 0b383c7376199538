package routine

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"swippe/internal/pkg/response"
	"swippe/internal/pkg/validator"
)

// Handler exposes the routine delivery operations over HTTP.
// All routes require an authenticated user; every operation is scoped
// to the caller's user ID.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns the user's routines together with account analytics.
func (h *Handler) List(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	resp, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// Create starts a new routine delivery.
func (h *Handler) Create(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "missing required fields", fields)
		return
	}

	rt, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rt)
}

// Update applies a partial patch to a routine.
func (h *Handler) Update(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := routineID(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	rt, err := h.service.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rt)
}

// TogglePause pauses or resumes a routine.
func (h *Handler) TogglePause(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := routineID(c)
	if !ok {
		return
	}

	rt, err := h.service.TogglePause(c.Request.Context(), userID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rt)
}

// SkipNext advances the next delivery by exactly one cycle.
func (h *Handler) SkipNext(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := routineID(c)
	if !ok {
		return
	}

	rt, err := h.service.SkipNext(c.Request.Context(), userID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"routine":           rt,
		"new_next_delivery": rt.NextDeliveryDate.Format(DateLayout),
	})
}

// LockPrice freezes the current catalog price on the routine.
func (h *Handler) LockPrice(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := routineID(c)
	if !ok {
		return
	}

	rt, err := h.service.LockPrice(c.Request.Context(), userID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"routine":      rt,
		"locked_price": rt.PriceLocked,
	})
}

// Delete hard-removes a routine.
func (h *Handler) Delete(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}
	id, ok := routineID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Suggestions returns routine candidates mined from order history.
func (h *Handler) Suggestions(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	suggestions, err := h.service.Suggestions(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"suggestions": suggestions})
}

// Analytics returns the account-wide projection.
func (h *Handler) Analytics(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	summary, err := h.service.Analytics(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"analytics": summary})
}

func writeError(c *gin.Context, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Error(), gin.H{"field": ve.Field})
	case errors.Is(err, ErrUnauthorized):
		response.Error(c, http.StatusForbidden, "UNAUTHORIZED", err.Error())
	case errors.Is(err, ErrProductNotFound):
		response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", err.Error())
	case errors.Is(err, ErrProductUnavailable):
		response.Error(c, http.StatusNotFound, "PRODUCT_UNAVAILABLE", err.Error())
	case errors.Is(err, ErrInvalidFrequency):
		response.Error(c, http.StatusBadRequest, "INVALID_FREQUENCY", err.Error())
	case errors.Is(err, ErrCapacityExceeded):
		response.Error(c, http.StatusConflict, "CAPACITY_EXCEEDED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

// mustUserID extracts the authenticated user ID from the context.
// Writes 401 and returns 0 when missing.
func mustUserID(c *gin.Context) int64 {
	id := c.GetInt64("user_id")
	if id == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	}
	return id
}

func routineID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid routine ID")
		return 0, false
	}
	return id, true
}
