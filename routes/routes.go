package routes

import (
	"MediDesk/cache"
	"MediDesk/config"
	"MediDesk/controllers"
	"MediDesk/handlers"
	"MediDesk/middlewares"
	"MediDesk/repositories"
	"MediDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.example.com", "https://example-dev.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, cache)
	departmentRepo := repositories.NewDepartmentRepository(db, cache)
	doctorRepo := repositories.NewDoctorRepository(db, cache)
	patientRepo := repositories.NewPatientRepository(db, cache)
	availabilityRepo := repositories.NewAvailabilityRepository(db, cache)
	appointmentRepo := repositories.NewAppointmentRepository(db, cache)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	departmentService := services.NewDepartmentService(departmentRepo)
	doctorService := services.NewDoctorService(doctorRepo, departmentRepo, userRepo)
	patientService := services.NewPatientService(patientRepo, userRepo)
	availabilityService := services.NewAvailabilityService(availabilityRepo, doctorRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, doctorRepo, patientRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, patientService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	patientHandler := handlers.NewPatientHandler(patientService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	// Register routes
	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	adminController := controllers.NewAdminController(departmentHandler, doctorHandler, patientHandler, appointmentHandler)
	adminController.RegisterRoutes(router)

	doctorController := controllers.NewDoctorController(doctorHandler, availabilityHandler, appointmentHandler)
	doctorController.RegisterRoutes(router)

	patientController := controllers.NewPatientController(patientHandler, doctorHandler, availabilityHandler, appointmentHandler)
	patientController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
