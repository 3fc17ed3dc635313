package main

import (
	"embed"
	"log"
	"time"

	"minilink/internal/cache"
	"minilink/internal/config"
	"minilink/internal/controllers"
	"minilink/internal/database"
	"minilink/internal/middleware"
	"minilink/internal/repository"
	"minilink/internal/service"
	"minilink/internal/token"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db, migrationsFS); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	linkRepo := repository.NewLinkRepository(db)
	clickRepo := repository.NewClickRepository(db)
	userRepo := repository.NewUserRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	postRepo := repository.NewPostRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	seoRepo := repository.NewSEORepository(db)

	// Initialize JWT service
	jwtService := token.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Milestone notifications run on a background worker; Close drains it
	// on shutdown
	emailSender := service.LogEmailSender{}
	notifier := service.NewNotifier(notifRepo, userRepo, emailSender)
	defer notifier.Close()

	// Initialize services
	linkService := service.NewLinkService(linkRepo, cacheClient)
	recorder := service.NewClickRecorder(clickRepo, notifier)
	resolver := service.NewResolverService(linkRepo, recorder)
	analyticsService := service.NewAnalyticsService(linkRepo, clickRepo, userRepo)
	authService := service.NewAuthService(userRepo, jwtService)
	notificationService := service.NewNotificationService(notifRepo)
	blogService := service.NewBlogService(postRepo)
	contactService := service.NewContactService(messageRepo, emailSender, cfg.AdminEmail)
	seoService := service.NewSEOService(seoRepo, postRepo)

	// Bootstrap the admin account if configured
	if err := authService.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("Warning: Failed to bootstrap admin account: %v", err)
	}

	// Initialize controllers
	shortenerController := controllers.NewShortenerController(linkService, resolver, analyticsService, cfg.BaseURL)
	authController := controllers.NewAuthController(authService)
	qrcodeController := controllers.NewQRCodeController(linkService, cfg.BaseURL)
	adminController := controllers.NewAdminController(authService, analyticsService, contactService)
	notificationController := controllers.NewNotificationController(notificationService)
	blogController := controllers.NewBlogController(blogService)
	contactController := controllers.NewContactController(contactService)
	seoController := controllers.NewSEOController(seoService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	shortenRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitShortenRPS), cfg.RateLimitShortenBurst)
	redirectRateLimiter := middleware.NewRateLimiter(rate.Limit(30.0), 60) // More lenient for redirects (30 req/s, burst 60)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Crawler surfaces
	router.GET("/robots.txt", seoController.RobotsTxt)
	router.GET("/sitemap.xml", seoController.SitemapXML)

	// Redirect endpoints with lenient rate limiting
	router.GET("/:shortCode", redirectRateLimiter.LimitMiddleware(), shortenerController.Resolve)
	router.POST("/:shortCode/password", redirectRateLimiter.LimitMiddleware(), shortenerController.SubmitPassword)

	// API v1 routes group with general rate limiting
	api := router.Group("/api/v1")
	api.Use(generalRateLimiter.LimitMiddleware())
	{
		// Auth routes with stricter rate limiting
		auth := api.Group("/auth")
		auth.Use(authRateLimiter.LimitMiddleware())
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Protected routes - require JWT authentication
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			// Link creation with stricter rate limiting
			protected.POST("/shorten", shortenRateLimiter.LimitMiddleware(), shortenerController.CreateShortURL)

			// Other link routes (use general rate limiting from group)
			protected.GET("/urls", shortenerController.GetUserLinks)
			protected.GET("/url/:shortCode", shortenerController.GetLinkStats)
			protected.GET("/url/:shortCode/analytics", shortenerController.GetLinkAnalytics)
			protected.PATCH("/url/:id", shortenerController.UpdateLink)
			protected.DELETE("/url/:id", shortenerController.DeleteLink)

			// In-app notifications
			protected.GET("/notifications", notificationController.List)
			protected.POST("/notifications/:id/read", notificationController.MarkRead)
		}

		// Public redirect endpoint with lenient rate limiting (same as direct redirect)
		api.GET("/redirect/:shortCode", redirectRateLimiter.LimitMiddleware(), shortenerController.GetLinkPublic)

		// QR Code generation
		api.GET("/qrcode/:shortCode", qrcodeController.GenerateQRCode)

		// Public content
		api.GET("/blog", blogController.ListPublished)
		api.GET("/blog/:slug", blogController.GetBySlug)
		api.POST("/contact", contactController.Submit)
		api.GET("/seo", seoController.GetSettings)

		// Admin routes - require JWT authentication and the admin role
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(jwtService), middleware.AdminOnly())
		{
			admin.GET("/analytics", adminController.GetAnalytics)

			admin.GET("/users", adminController.ListUsers)
			admin.POST("/users", adminController.CreateUser)
			admin.PUT("/users/:id", adminController.UpdateUser)
			admin.DELETE("/users/:id", adminController.DeleteUser)

			admin.GET("/messages", adminController.ListMessages)
			admin.POST("/messages/:id/read", adminController.MarkMessageRead)
			admin.DELETE("/messages/:id", adminController.DeleteMessage)

			admin.GET("/blog", blogController.ListAll)
			admin.POST("/blog", blogController.CreatePost)
			admin.PUT("/blog/:id", blogController.UpdatePost)
			admin.DELETE("/blog/:id", blogController.DeletePost)

			admin.PUT("/seo", seoController.UpdateSettings)
		}
	}

	// Start the server on port 8080
	log.Println("Server starting on http://localhost:8080")
	router.Run(":8080")
}
