package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/communityworks/volunteer-platform/internal/config"
	"github.com/communityworks/volunteer-platform/internal/constants"
	"github.com/communityworks/volunteer-platform/internal/database"
	"github.com/communityworks/volunteer-platform/internal/handlers"
	"github.com/communityworks/volunteer-platform/internal/middleware"
	"github.com/communityworks/volunteer-platform/internal/models"
	"github.com/communityworks/volunteer-platform/internal/repository"
	"github.com/communityworks/volunteer-platform/internal/scheduler"
	"github.com/communityworks/volunteer-platform/internal/services"
	"github.com/communityworks/volunteer-platform/pkg/logger"
	"github.com/communityworks/volunteer-platform/pkg/mail"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	taskRepo := repository.NewTaskRepository(db)
	signupRepo := repository.NewSignupRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	userRepo := repository.NewUserRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Services
	skillService := services.NewSkillService(skillRepo)
	taskService := services.NewTaskService(taskRepo, signupRepo, userRepo, skillService)
	signupService := services.NewSignupService(signupRepo, taskRepo, userRepo)
	ratingService := services.NewRatingService(ratingRepo)
	authService := services.NewAuthService(userRepo, skillService)
	userService := services.NewUserService(userRepo, taskRepo, signupRepo, skillService)

	// Reminders are only sent when SMTP is configured; the status sweep
	// runs either way.
	var mailer mail.Mailer
	if cfg.SMTPEnabled {
		m, err := mail.NewSMTPMailer(mail.SMTPSettings{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
		if err != nil {
			log.Fatalf("Failed to configure mailer: %v", err)
		}
		mailer = m
	}

	sched := scheduler.New(taskRepo, signupRepo, mailer,
		scheduler.WithStatusSchedule(cfg.StatusSweepSpec),
		scheduler.WithReminderSchedule(cfg.ReminderSweepSpec),
	)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Initialize Gin router
	r := gin.Default()

	// Setup cookie-backed session middleware
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	signupHandler := handlers.NewSignupHandler(signupService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	skillHandler := handlers.NewSkillHandler(skillService, userService)
	userHandler := handlers.NewUserHandler(userService)
	systemHandler := handlers.NewSystemHandler(sched)

	// Health check endpoint
	r.GET("/health", systemHandler.Health)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register/volunteer", authHandler.RegisterVolunteer)
			auth.POST("/register/organization", authHandler.RegisterOrganization)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Task browsing and signups
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:taskId", taskHandler.GetTask)
			tasks.GET("/:taskId/signups", signupHandler.ListTaskSignups)
			tasks.POST("/:taskId/signups", middleware.RequireUserType(models.UserTypeVolunteer), signupHandler.SignUp)
			tasks.DELETE("/:taskId/signups", middleware.RequireUserType(models.UserTypeVolunteer), signupHandler.CancelSignup)
		}

		// Organization profiles and task management
		orgs := api.Group("/organizations")
		orgs.Use(middleware.RequireAuth())
		{
			orgs.GET("/:organizationId", userHandler.GetOrganization)
			orgs.GET("/:organizationId/tasks", taskHandler.ListOrganizationTasks)

			orgTasks := orgs.Group("/:organizationId/tasks")
			orgTasks.Use(middleware.RequireUserType(models.UserTypeOrganization))
			{
				orgTasks.POST("", taskHandler.CreateTask)
				orgTasks.PATCH("/:taskId", taskHandler.UpdateTask)
				orgTasks.DELETE("/:taskId", taskHandler.DeleteTask)
				orgTasks.POST("/:taskId/cancel", taskHandler.CancelTask)
			}
		}

		// Volunteer profiles
		volunteers := api.Group("/volunteers")
		volunteers.Use(middleware.RequireAuth())
		{
			volunteers.GET("/:volunteerId", userHandler.GetVolunteer)
		}

		// Signup administration
		signups := api.Group("/task-signups")
		signups.Use(middleware.RequireAuth())
		{
			signups.GET("/reminder-status", signupHandler.GetReminderStatus)
			signups.DELETE("/:signupId", signupHandler.CancelSignupByID)
		}

		// Current account
		me := api.Group("/me")
		me.Use(middleware.RequireAuth())
		{
			me.GET("/signups", middleware.RequireUserType(models.UserTypeVolunteer), signupHandler.ListMySignups)
			me.PUT("/skills", middleware.RequireUserType(models.UserTypeVolunteer), skillHandler.UpdateMySkills)
			me.DELETE("", userHandler.DeleteAccount)
		}

		// Ratings
		ratings := api.Group("/ratings")
		ratings.Use(middleware.RequireAuth())
		{
			ratings.POST("", ratingHandler.SubmitRating)
			ratings.GET("/:ratingId", ratingHandler.GetRating)
			ratings.PUT("/:ratingId", ratingHandler.EditRating)
			ratings.DELETE("/:ratingId", ratingHandler.DeleteRating)
		}

		// Rating lookups per user
		users := api.Group("/users")
		users.Use(middleware.RequireAuth())
		{
			users.GET("/:userId/ratings", ratingHandler.ListRatingsForUser)
			users.GET("/:userId/ratings/authored", ratingHandler.ListRatingsByUser)
		}

		// Skill catalog
		skills := api.Group("/skills")
		skills.Use(middleware.RequireAuth())
		{
			skills.GET("", skillHandler.ListSkills)
			skills.GET("/:skillId", skillHandler.GetSkill)
			skills.GET("/name/:name", skillHandler.GetSkillByName)
			skills.POST("", skillHandler.CreateSkill)
			skills.DELETE("/:skillId", skillHandler.DeleteSkill)
		}

		// Manual sweep trigger
		api.POST("/admin/sweeps/run", middleware.RequireAuth(), systemHandler.RunSweeps)
	}

	// Start server
	logger.Info("server starting")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
