package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fraudwatch/case-manager/case-manager-backend/internal/cases"
	"fraudwatch/case-manager/case-manager-backend/internal/config"
	"fraudwatch/case-manager/case-manager-backend/internal/database"
	"fraudwatch/case-manager/case-manager-backend/internal/evidence"
	"fraudwatch/case-manager/case-manager-backend/internal/health"
	"fraudwatch/case-manager/case-manager-backend/internal/lookup"
	"fraudwatch/case-manager/case-manager-backend/internal/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := newLogger(cfg.Logging.Level)
	defer logger.Sync()

	// The store connection is acquired once and shared by all requests.
	// Missing configuration or a failed connect degrades the API to
	// "database not available" responses instead of refusing to start.
	var client *mongo.Client
	var db *mongo.Database
	if cfg.Database.Available() {
		var err error
		client, db, err = database.Connect(context.Background(), cfg.Database)
		if err != nil {
			logger.Warn("database unavailable, running degraded", zap.Error(err))
		}
	} else {
		logger.Warn("DATABASE_URL or DATABASE_NAME not set, running degraded")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// ---------------- HEALTH ----------------
	healthHandler := health.NewHandler(db, cfg.Database)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	// ---------------- CASES ----------------
	caseRepo := cases.NewRepository(db)
	caseService := cases.NewService(caseRepo)
	cases.NewHandler(caseService, logger).RegisterRoutes(api)

	// ---------------- EVIDENCE ----------------
	evidenceRepo := evidence.NewRepository(db)
	evidenceService := evidence.NewService(evidenceRepo, caseService)
	evidence.NewHandler(evidenceService, logger).RegisterRoutes(api)

	// ---------------- LOOKUP ----------------
	lookup.NewHandler().RegisterRoutes(api)

	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("mongo disconnect failed", zap.Error(err))
		}
	}
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
