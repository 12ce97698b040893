package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/azhar2201/achievement-tracker/internal/ai"
	"github.com/azhar2201/achievement-tracker/internal/config"
	"github.com/azhar2201/achievement-tracker/internal/database"
	"github.com/azhar2201/achievement-tracker/internal/handlers"
	"github.com/azhar2201/achievement-tracker/internal/jobs"
	"github.com/azhar2201/achievement-tracker/internal/repository"
	cronjobs "github.com/azhar2201/achievement-tracker/internal/scheduler"
	"github.com/azhar2201/achievement-tracker/internal/services"
	"github.com/azhar2201/achievement-tracker/pkg/email"
	"github.com/azhar2201/achievement-tracker/pkg/logger"
	"github.com/azhar2201/achievement-tracker/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	achievementRepo := repository.NewAchievementRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// --- Generators ---
	remote := ai.NewRemoteGenerator(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger.Log)
	fallback := ai.NewRuleBasedGenerator()
	if remote == nil {
		logger.Log.Info("No AI provider configured, resume generation uses the rule-based fallback")
	}

	// --- Services ---
	mailer := email.NewSenderFromEnv()
	studentService := services.NewStudentService(studentRepo, mailer)
	achievementService := services.NewAchievementService(achievementRepo, auditRepo)
	analyticsService := services.NewAnalyticsService(achievementRepo)
	assistantService := services.NewAssistantService(remote, achievementRepo, studentRepo, analyticsService)

	var remoteGen ai.Generator
	if remote != nil {
		remoteGen = remote
	}
	resumeService := services.NewResumeService(achievementRepo, studentRepo, remoteGen, fallback)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(studentService, cfg)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	profileHandler := handlers.NewProfileHandler(studentService, cfg)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Public auth routes
	router.HandleFunc("/api/auth/login", authHandler.LoginHandler).Methods("POST")
	router.HandleFunc("/api/students/register", authHandler.RegisterStudentHandler).Methods("POST")
	router.HandleFunc("/api/students/login", authHandler.LoginStudentHandler).Methods("POST")

	// Profile routes; the legacy /api/user prefix is kept as an alias of the
	// unified profile service.
	for _, prefix := range []string{"/api/students", "/api/user"} {
		profileRoutes := router.PathPrefix(prefix).Subrouter()
		profileRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		profileRoutes.Use(middleware.UpdateLastActiveMiddleware(studentService))
		profileRoutes.HandleFunc("/profile", profileHandler.GetProfileHandler).Methods("GET")
		profileRoutes.HandleFunc("/profile", profileHandler.UpdateProfileHandler).Methods("PUT")
	}

	// Achievement routes. Student CRUD and admin review share the prefix;
	// the admin-only handlers check the role themselves.
	achievementRoutes := router.PathPrefix("/api/achievements").Subrouter()
	achievementRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	achievementRoutes.Use(middleware.UpdateLastActiveMiddleware(studentService))
	adminOnly := middleware.RequireRole("admin")
	achievementRoutes.HandleFunc("/log", achievementHandler.LogAchievementHandler).Methods("POST")
	achievementRoutes.HandleFunc("/student", achievementHandler.GetStudentAchievementsHandler).Methods("GET")
	achievementRoutes.Handle("/pending", adminOnly(http.HandlerFunc(achievementHandler.GetPendingAchievementsHandler))).Methods("GET")
	achievementRoutes.Handle("/{id}/validate", adminOnly(http.HandlerFunc(achievementHandler.ValidateAchievementHandler))).Methods("PUT")
	achievementRoutes.Handle("/{id}/audit", adminOnly(http.HandlerFunc(achievementHandler.GetAuditTrailHandler))).Methods("GET")
	achievementRoutes.HandleFunc("/{id}", achievementHandler.UpdateAchievementHandler).Methods("PUT")
	achievementRoutes.HandleFunc("/{id}", achievementHandler.DeleteAchievementHandler).Methods("DELETE")
	achievementRoutes.Handle("", adminOnly(http.HandlerFunc(achievementHandler.GetAllAchievementsHandler))).Methods("GET")
	achievementRoutes.Handle("/", adminOnly(http.HandlerFunc(achievementHandler.GetAllAchievementsHandler))).Methods("GET")

	// Analytics
	analyticsRoutes := router.PathPrefix("/api/analytics").Subrouter()
	analyticsRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	analyticsRoutes.HandleFunc("/summary", analyticsHandler.SummaryHandler).Methods("GET")

	// Resume pipeline
	resumeRoutes := router.PathPrefix("/api/resume").Subrouter()
	resumeRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	resumeRoutes.HandleFunc("/generate", resumeHandler.GenerateResumeHandler).Methods("POST")

	// AI helper routes, rate limited per caller
	aiLimiter := middleware.NewRateLimiter(cfg.AIRateLimit)
	aiRoutes := router.PathPrefix("/api/ai").Subrouter()
	aiRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	aiRoutes.Use(aiLimiter.Middleware)
	aiRoutes.HandleFunc("/describe", assistantHandler.DescribeHandler).Methods("POST")
	aiRoutes.HandleFunc("/optimize-bullet", assistantHandler.OptimizeBulletHandler).Methods("POST")
	aiRoutes.HandleFunc("/extract-skills", assistantHandler.ExtractSkillsHandler).Methods("POST")
	aiRoutes.HandleFunc("/gap-analysis", assistantHandler.GapAnalysisHandler).Methods("POST")
	aiRoutes.HandleFunc("/chat", assistantHandler.ChatHandler).Methods("POST")

	// Role-scoped conversational assistant
	chatRoutes := router.PathPrefix("/api/chat").Subrouter()
	chatRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	chatRoutes.Use(aiLimiter.Middleware)
	chatRoutes.HandleFunc("", assistantHandler.ChatHandler).Methods("POST")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Daily reminder for the review backlog
	reminder := jobs.NewPendingReminder(achievementService)
	cronjobs.StartReminderCronJobs(reminder)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // adjust to frontend origin
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
