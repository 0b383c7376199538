package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"swippe/internal/config"
	"swippe/internal/database"
	"swippe/internal/domain/catalog"
	"swippe/internal/domain/notify"
	"swippe/internal/domain/order"
	"swippe/internal/domain/routine"
	"swippe/internal/middleware"
	jwtsvc "swippe/internal/pkg/jwt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	var logger *zap.Logger
	var err error
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
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
	if err := db.AutoMigrate(
		&catalog.Product{},
		&order.Order{},
		&routine.Routine{},
	); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	catalogRepo := catalog.NewRepository(db)
	orderRepo := order.NewRepository(db)
	routineRepo := routine.NewRepository(db)

	hub := notify.NewHub()
	defer hub.Close()
	notifier := notify.NewNotifier(hub, logger)
	wsHandler := notify.NewWSHandler(hub, jwtService, logger)

	routineService := routine.NewService(routineRepo, catalogRepo, orderRepo, orderRepo, notifier, logger)
	routineHandler := routine.NewHandler(routineService)
	catalogHandler := catalog.NewHandler(catalogRepo)

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(logger))

	v1 := r.Group("/api/v1")
	{
		notify.RegisterRoutes(v1, wsHandler)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(jwtService))
		{
			catalog.RegisterRoutes(protected, catalogHandler)
			routine.RegisterRoutes(protected, routineHandler)
		}
	}

	logger.Info("starting server", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
