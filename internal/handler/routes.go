package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/impact-gym-api/internal/middleware"
)

// Handlers groups every HTTP handler the API exposes.
type Handlers struct {
	Auth      *AuthHandler
	Students  *StudentHandler
	Payments  *PaymentHandler
	Workouts  *WorkoutHandler
	Client    *ClientHandler
	Dashboard *DashboardHandler
	Metrics   *MetricsHandler
}

// RouteOptions carries the cross-cutting middleware applied per realm.
type RouteOptions struct {
	Tokens       middleware.TokenParser
	LoginLimiter gin.HandlerFunc
	Audit        gin.HandlerFunc
}

// Register mounts the API under /api. Each group states its realm.
func Register(r *gin.Engine, h Handlers, opts RouteOptions) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group("/api")
	api.GET("/health", h.Metrics.Health)

	login := func(final gin.HandlerFunc) []gin.HandlerFunc {
		if opts.LoginLimiter == nil {
			return []gin.HandlerFunc{final}
		}
		return []gin.HandlerFunc{opts.LoginLimiter, final}
	}
	admin := []gin.HandlerFunc{middleware.RequireAdmin(opts.Tokens)}
	if opts.Audit != nil {
		admin = append(admin, opts.Audit)
	}
	student := middleware.RequireStudent(opts.Tokens)

	auth := api.Group("/auth")
	auth.POST("/login", login(h.Auth.AdminLogin)...)
	auth.GET("/verify", middleware.RequireAdmin(opts.Tokens), h.Auth.Verify)

	students := api.Group("/students", admin...)
	students.GET("", h.Students.List)
	students.GET("/search/:query", h.Students.Search)
	students.GET("/:id", h.Students.Get)
	students.POST("", h.Students.Create)
	students.PUT("/:id", h.Students.Update)
	students.DELETE("/:id", h.Students.Delete)
	students.GET("/:id/measurements", h.Students.ListMeasurements)
	students.POST("/:id/measurements", h.Students.RecordMeasurement)

	payments := api.Group("/payments", admin...)
	payments.GET("", h.Payments.List)
	payments.GET("/export", h.Payments.Export)
	payments.GET("/student/:id", h.Payments.ListByStudent)
	payments.POST("", h.Payments.Record)
	payments.PUT("/:id/status", h.Payments.UpdateStatus)
	payments.DELETE("/:id", h.Payments.Delete)

	workouts := api.Group("/workouts", admin...)
	workouts.GET("", h.Workouts.List)
	workouts.GET("/:student_id", h.Workouts.Get)
	workouts.PUT("/:student_id", h.Workouts.Upsert)
	workouts.DELETE("/:student_id", h.Workouts.Delete)

	dashboard := api.Group("/dashboard", admin...)
	dashboard.GET("/summary", h.Dashboard.Summary)

	client := api.Group("/client")
	clientAuth := client.Group("/auth")
	clientAuth.POST("/login", login(h.Auth.StudentLogin)...)
	clientAuth.GET("/verify", student, h.Auth.Verify)

	self := client.Group("", student)
	self.GET("/profile", h.Client.Profile)
	self.GET("/payments", h.Client.Payments)
	self.GET("/workout", h.Client.Workout)
	self.GET("/measurements", h.Client.Measurements)
	self.GET("/progress", h.Client.Progress)
}
