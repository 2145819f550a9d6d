package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/impact-gym-api/api/swagger"
	"github.com/noah-isme/impact-gym-api/internal/handler"
	"github.com/noah-isme/impact-gym-api/internal/middleware"
	"github.com/noah-isme/impact-gym-api/internal/repository"
	"github.com/noah-isme/impact-gym-api/internal/service"
	"github.com/noah-isme/impact-gym-api/pkg/cache"
	"github.com/noah-isme/impact-gym-api/pkg/config"
	"github.com/noah-isme/impact-gym-api/pkg/database"
	"github.com/noah-isme/impact-gym-api/pkg/export"
	"github.com/noah-isme/impact-gym-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/impact-gym-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/impact-gym-api/pkg/middleware/requestid"
	"github.com/noah-isme/impact-gym-api/pkg/validation"
)

const (
	cacheKeyPrefix  = "impact-gym"
	shutdownTimeout = 15 * time.Second
)

// @title Impact Gym API
// @version 1.0.0
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	checks := map[string]handler.HealthCheck{"database": db.PingContext}

	var redisClient redis.Cmdable
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			redisClient = client
			checks["redis"] = cache.Ping(client)
		}
	}

	validate := validation.New()
	metrics := service.NewMetricsService()
	billing := service.NewBillingPolicy(cfg.Billing)

	adminRepo := repository.NewAdminRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)
	measurementRepo := repository.NewMeasurementRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, cacheKeyPrefix)

	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.DashboardTTL, logr, redisClient != nil)
	dashboardSvc := service.NewDashboardService(studentRepo, billing, cacheSvc, cfg.Cache.DashboardTTL, logr)
	authSvc := service.NewAuthService(adminRepo, studentRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
	})
	paymentSvc := service.NewPaymentService(paymentRepo, studentRepo, billing, dashboardSvc, metrics, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, workoutRepo, paymentRepo, measurementRepo, billing, dashboardSvc, metrics, validate, logr)
	workoutSvc := service.NewWorkoutService(workoutRepo, studentRepo, validate, logr)
	clientSvc := service.NewClientService(studentRepo, paymentSvc, workoutSvc, measurementRepo, logr)
	exportSvc := service.NewExportService(paymentSvc, billing, export.NewCSVExporter(0), export.NewPDFExporter(), logr)

	r := gin.New()
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.Recovery(logr))
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	handler.Register(r, handler.Handlers{
		Auth:      handler.NewAuthHandler(authSvc, metrics),
		Students:  handler.NewStudentHandler(studentSvc),
		Payments:  handler.NewPaymentHandler(paymentSvc, exportSvc),
		Workouts:  handler.NewWorkoutHandler(workoutSvc),
		Client:    handler.NewClientHandler(clientSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Metrics:   handler.NewMetricsHandler(metrics, checks),
	}, handler.RouteOptions{
		Tokens:       authSvc,
		LoginLimiter: middleware.NewRateLimiter(cfg.RateLimit.LoginPerSecond, cfg.RateLimit.LoginBurst).Handler(),
		Audit:        middleware.Audit(logr.Named("audit")),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", server.Addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logr.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logr.Error("server shutdown failed", zap.Error(err))
	}
}
