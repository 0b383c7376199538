package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"swippe/internal/config"
	"swippe/internal/database"
	"swippe/internal/domain/catalog"
	"swippe/internal/domain/order"
	"swippe/internal/domain/routine"
)

// One-shot dispatcher, meant to run from cron. Fires every due routine
// cycle: places the order request, advances the schedule, notifies.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	catalogRepo := catalog.NewRepository(db)
	orderRepo := order.NewRepository(db)
	routineRepo := routine.NewRepository(db)

	// No notifier: the dispatcher has no websocket hub; pushes only
	// happen on the API process.
	service := routine.NewService(routineRepo, catalogRepo, orderRepo, orderRepo, nil, logger)

	ctx := context.Background()
	due, err := service.ListDue(ctx)
	if err != nil {
		logger.Fatal("listing due routines failed", zap.Error(err))
	}

	fired, paused, failed := 0, 0, 0
	for _, rt := range due {
		_, err := service.CompleteCycle(ctx, rt.UserID, rt.ID)
		switch {
		case err == nil:
			fired++
		case errors.Is(err, routine.ErrCapacityExceeded):
			// Cap reached: pause so the routine stops polling as due.
			pause := true
			if _, err := service.Update(ctx, rt.UserID, rt.ID, &routine.UpdateRequest{IsPaused: &pause}); err != nil {
				logger.Error("pausing capped routine failed",
					zap.Int64("routine_id", rt.ID), zap.Error(err))
				failed++
				continue
			}
			paused++
		default:
			failed++
			logger.Error("cycle completion failed",
				zap.Int64("routine_id", rt.ID),
				zap.Int64("user_id", rt.UserID),
				zap.Error(err))
		}
	}

	logger.Info("dispatch run completed",
		zap.Int("due", len(due)),
		zap.Int("fired", fired),
		zap.Int("paused", paused),
		zap.Int("failed", failed))
}
