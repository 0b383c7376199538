package routine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CatalogLookup is implemented by the catalog repository. A nil price
// means the product does not resolve.
type CatalogLookup interface {
	GetPrice(ctx context.Context, productID int64) (*float64, error)
	GetCategory(ctx context.Context, productID int64) (string, error)
}

// HistorySource is implemented by the order repository: the user's
// past orders joined with their products.
type HistorySource interface {
	ListOrders(ctx context.Context, userID int64) ([]PastOrder, error)
}

// OrderPlacer receives the order request when a cycle fires with
// auto_order enabled. Placement/fulfillment is not this engine's job.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, userID, productID int64, quantity int, unitPrice float64) error
}

// Notifier is a best-effort sink. Failures are logged and never block
// an operation.
type Notifier interface {
	Notify(ctx context.Context, userID int64, event, message string) error
}

// Service is the lifecycle controller: the only component that mutates
// routines. It composes the store, the schedule math, the price lock
// and the read-side projections.
type Service struct {
	repo     Repository
	catalog  CatalogLookup
	history  HistorySource
	orders   OrderPlacer
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time
}

func NewService(repo Repository, catalog CatalogLookup, history HistorySource, orders OrderPlacer, notifier Notifier, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		catalog:  catalog,
		history:  history,
		orders:   orders,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// Create validates the request, computes the first delivery date
// anchored at the start date, optionally locks the current price, and
// persists the routine as active and unpaused.
func (s *Service) Create(ctx context.Context, userID int64, req *CreateRequest) (*Routine, error) {
	if req.Quantity < 1 {
		return nil, newValidationError("quantity", "must be at least 1")
	}
	freq := Frequency(req.Frequency)
	if !freq.Valid() {
		return nil, newValidationError("frequency", "must be one of daily, weekly, biweekly, monthly, custom")
	}

	var interval *int
	if freq == FreqCustom {
		if req.CustomIntervalDays == nil || *req.CustomIntervalDays < 1 {
			return nil, newValidationError("custom_interval_days", "required and must be at least 1 for custom frequency")
		}
		interval = req.CustomIntervalDays
	}
	if req.MaxOrders != nil && *req.MaxOrders < 1 {
		return nil, newValidationError("max_orders", "must be at least 1 when set")
	}

	startDate := DateOnly(s.now())
	if req.StartDate != nil {
		parsed, err := time.Parse(DateLayout, *req.StartDate)
		if err != nil {
			return nil, newValidationError("start_date", "expected YYYY-MM-DD")
		}
		startDate = DateOnly(parsed)
	}
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse(DateLayout, *req.EndDate)
		if err != nil {
			return nil, newValidationError("end_date", "expected YYYY-MM-DD")
		}
		if parsed.Before(startDate) {
			return nil, newValidationError("end_date", "must not be before start_date")
		}
		d := DateOnly(parsed)
		endDate = &d
	}

	price, err := s.catalog.GetPrice(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, ErrProductNotFound
	}

	nextDate, err := NextDelivery(freq, startDate, interval)
	if err != nil {
		return nil, err
	}

	rt := &Routine{
		UserID:              userID,
		ProductID:           req.ProductID,
		Quantity:            req.Quantity,
		Frequency:           freq,
		CustomIntervalDays:  interval,
		DeliveryDay:         req.DeliveryDay,
		DeliveryTime:        req.DeliveryTime,
		NextDeliveryDate:    nextDate,
		IsActive:            true,
		IsPaused:            false,
		AutoOrder:           boolOrDefault(req.AutoOrder, true),
		MaxOrders:           req.MaxOrders,
		OrdersCompleted:     0,
		NotificationEnabled: boolOrDefault(req.NotificationEnabled, true),
		SkipHolidays:        boolOrDefault(req.SkipHolidays, true),
		StartDate:           startDate,
		EndDate:             endDate,
		CreatedAt:           s.now(),
		UpdatedAt:           s.now(),
	}
	if rt.DeliveryTime == "" {
		rt.DeliveryTime = "09:00"
	}
	if req.LockPrice {
		rt.PriceLocked = price
	}

	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, err
	}

	s.notify(ctx, rt, "routine.created",
		fmt.Sprintf("Routine delivery created, first delivery on %s", rt.NextDeliveryDate.Format(DateLayout)))
	return rt, nil
}

// List returns the user's routines joined with live product data, plus
// the account-wide analytics over the same snapshot.
func (s *Service) List(ctx context.Context, userID int64) (*ListResponse, error) {
	rows, err := s.repo.ListWithProducts(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	resp := &ListResponse{
		Routines:  make([]Response, 0, len(rows)),
		Analytics: Summarize(rows),
	}
	for _, row := range rows {
		resp.Routines = append(resp.Routines, toResponse(row, now))
	}
	return resp, nil
}

// Analytics recomputes the account-wide projection on demand.
func (s *Service) Analytics(ctx context.Context, userID int64) (Summary, error) {
	rows, err := s.repo.ListWithProducts(ctx, userID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(rows), nil
}

// Update applies a partial patch. Only supplied fields change; the
// next delivery date is deliberately NOT recomputed on a frequency
// change; only create, skip and cycle completion compute dates.
func (s *Service) Update(ctx context.Context, userID, id int64, req *UpdateRequest) (*Routine, error) {
	return s.repo.UpdateOwned(ctx, userID, id, func(rt *Routine) error {
		if req.empty() {
			return nil // still refreshes updated_at
		}
		if req.Quantity != nil {
			if *req.Quantity < 1 {
				return newValidationError("quantity", "must be at least 1")
			}
			rt.Quantity = *req.Quantity
		}
		if req.Frequency != nil {
			freq := Frequency(*req.Frequency)
			if !freq.Valid() {
				return newValidationError("frequency", "must be one of daily, weekly, biweekly, monthly, custom")
			}
			rt.Frequency = freq
		}
		if req.CustomIntervalDays != nil {
			if *req.CustomIntervalDays < 1 {
				return newValidationError("custom_interval_days", "must be at least 1")
			}
			rt.CustomIntervalDays = req.CustomIntervalDays
		}
		if rt.Frequency == FreqCustom {
			if rt.CustomIntervalDays == nil || *rt.CustomIntervalDays < 1 {
				return newValidationError("custom_interval_days", "required for custom frequency")
			}
		} else {
			rt.CustomIntervalDays = nil
		}
		if req.DeliveryDay != nil {
			rt.DeliveryDay = *req.DeliveryDay
		}
		if req.DeliveryTime != nil {
			rt.DeliveryTime = *req.DeliveryTime
		}
		if req.IsPaused != nil {
			rt.IsPaused = *req.IsPaused
		}
		if req.AutoOrder != nil {
			rt.AutoOrder = *req.AutoOrder
		}
		if req.MaxOrders != nil {
			if *req.MaxOrders < 1 {
				return newValidationError("max_orders", "must be at least 1 when set")
			}
			rt.MaxOrders = req.MaxOrders
		}
		if req.NotificationEnabled != nil {
			rt.NotificationEnabled = *req.NotificationEnabled
		}
		if req.SkipHolidays != nil {
			rt.SkipHolidays = *req.SkipHolidays
		}
		if req.EndDate != nil {
			parsed, err := time.Parse(DateLayout, *req.EndDate)
			if err != nil {
				return newValidationError("end_date", "expected YYYY-MM-DD")
			}
			if parsed.Before(rt.StartDate) {
				return newValidationError("end_date", "must not be before start_date")
			}
			d := DateOnly(parsed)
			rt.EndDate = &d
		}
		return nil
	})
}

// TogglePause flips the paused flag. No date recomputation.
func (s *Service) TogglePause(ctx context.Context, userID, id int64) (*Routine, error) {
	rt, err := s.repo.UpdateOwned(ctx, userID, id, func(rt *Routine) error {
		rt.IsPaused = !rt.IsPaused
		return nil
	})
	if err != nil {
		return nil, err
	}

	msg := "Routine resumed"
	if rt.IsPaused {
		msg = "Routine paused"
	}
	s.notify(ctx, rt, "routine.toggled", msg)
	return rt, nil
}

// SkipNext advances the next delivery date by exactly one cycle from
// the current date, even if that date is already in the past.
func (s *Service) SkipNext(ctx context.Context, userID, id int64) (*Routine, error) {
	rt, err := s.repo.UpdateOwned(ctx, userID, id, func(rt *Routine) error {
		next, err := NextDelivery(rt.Frequency, rt.NextDeliveryDate, rt.CustomIntervalDays)
		if err != nil {
			return err
		}
		rt.NextDeliveryDate = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, rt, "routine.skipped",
		fmt.Sprintf("Next delivery skipped, now due %s", rt.NextDeliveryDate.Format(DateLayout)))
	return rt, nil
}

// LockPrice freezes the current catalog price on the routine.
// Re-locking is not an error: it re-anchors the frozen price at
// whatever the catalog says now.
func (s *Service) LockPrice(ctx context.Context, userID, id int64) (*Routine, error) {
	rt, err := s.repo.UpdateOwned(ctx, userID, id, func(rt *Routine) error {
		price, err := s.catalog.GetPrice(ctx, rt.ProductID)
		if err != nil {
			return err
		}
		if price == nil {
			return ErrProductUnavailable
		}
		rt.PriceLocked = price
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, rt, "routine.price_locked",
		fmt.Sprintf("Price locked at %.2f", *rt.PriceLocked))
	return rt, nil
}

// Delete hard-removes the routine. Irreversible.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

// Suggestions mines the user's order history for routine candidates.
func (s *Service) Suggestions(ctx context.Context, userID int64) ([]Suggestion, error) {
	history, err := s.history.ListOrders(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Suggest(s.now(), history), nil
}

// CompleteCycle is invoked by the external dispatcher when a due
// routine fires. It enforces the lifetime order cap, places the order
// request when auto_order is on, records the completed cycle and
// advances the schedule by one cycle.
func (s *Service) CompleteCycle(ctx context.Context, userID, id int64) (*Routine, error) {
	rt, err := s.repo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if rt.CapReached() {
		return nil, ErrCapacityExceeded
	}

	if rt.AutoOrder {
		price, err := s.catalog.GetPrice(ctx, rt.ProductID)
		if err != nil {
			return nil, err
		}
		if price == nil {
			return nil, ErrProductUnavailable
		}
		unit := EffectivePrice(rt, *price)
		if err := s.orders.PlaceOrder(ctx, rt.UserID, rt.ProductID, rt.Quantity, unit); err != nil {
			return nil, err
		}
	}

	rt, err = s.repo.UpdateOwned(ctx, userID, id, func(rt *Routine) error {
		if rt.CapReached() {
			return ErrCapacityExceeded
		}
		fired := rt.NextDeliveryDate
		next, err := NextDelivery(rt.Frequency, fired, rt.CustomIntervalDays)
		if err != nil {
			return err
		}
		rt.LastDeliveryDate = &fired
		rt.OrdersCompleted++
		rt.NextDeliveryDate = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, rt, "routine.delivered",
		fmt.Sprintf("Delivery completed, next one due %s", rt.NextDeliveryDate.Format(DateLayout)))
	return rt, nil
}

// ListDue exposes the dispatcher's polling query.
func (s *Service) ListDue(ctx context.Context) ([]Routine, error) {
	return s.repo.ListDue(ctx, s.now())
}

// notify pushes an event to the sink when the routine opted in.
// Best-effort: failures are logged, never returned.
func (s *Service) notify(ctx context.Context, rt *Routine, event, message string) {
	if s.notifier == nil || !rt.NotificationEnabled {
		return
	}
	if err := s.notifier.Notify(ctx, rt.UserID, event, message); err != nil {
		s.log.Warn("notification failed",
			zap.Int64("user_id", rt.UserID),
			zap.Int64("routine_id", rt.ID),
			zap.String("event", event),
			zap.Error(err))
	}
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
