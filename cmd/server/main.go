package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"musefolio/internal/config"
	"musefolio/internal/database"
	"musefolio/internal/handlers"
	"musefolio/internal/images"
	"musefolio/internal/logging"
	"musefolio/internal/middleware"
	"musefolio/internal/services"
	"musefolio/pkg/auth"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize structured logging (JSON in production, text in dev)
	logging.Init()

	log.Println("🚀 Starting Musefolio Server...")

	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found or error loading it: %v", err)
	}

	cfg := config.Load()
	log.Printf("📋 Configuration loaded (Port: %s)", cfg.Port)

	if cfg.MongoURI == "" {
		log.Fatal("❌ MONGODB_URI environment variable is required")
	}
	db, err := database.NewMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}
	defer db.Close(context.Background())

	if err := db.Initialize(context.Background()); err != nil {
		log.Fatalf("❌ Failed to initialize MongoDB indexes: %v", err)
	}

	// Admin identity and session signing are mandatory: the admin panel is
	// unusable without them.
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Fatal("❌ ADMIN_EMAIL and ADMIN_PASSWORD environment variables are required")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET environment variable is required. Generate with: openssl rand -hex 32")
	}
	sessionAuth, err := auth.NewSessionAuth(cfg.SessionSecret, cfg.SessionExpiry)
	if err != nil {
		log.Fatalf("❌ Failed to initialize session auth: %v", err)
	}
	log.Printf("✅ Admin session auth initialized (expiry: %v)", sessionAuth.Expiry())

	// Image storage: S3 when configured, inline data URIs otherwise.
	var resolver images.Resolver
	if cfg.S3Bucket != "" {
		s3Resolver, err := images.NewS3Resolver(context.Background(), cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			log.Fatalf("❌ Failed to initialize S3 image storage: %v", err)
		}
		resolver = s3Resolver
		log.Printf("✅ Image uploads stored in S3 bucket %s (%s)", cfg.S3Bucket, cfg.S3Region)
	} else {
		resolver = images.NewDataURIResolver()
		log.Println("⚠️  S3_BUCKET not set - image uploads stored inline as data URIs")
	}

	// Stores and services
	projectStore := services.NewProjectStore(db)
	contentStore := services.NewContentStore(db)
	messageStore := services.NewMessageStore(db)
	pageCache := services.NewPageCache(5 * time.Minute)
	recommendations := services.NewRecommendationService(cfg.AssistantURL)
	if !recommendations.Enabled() {
		log.Println("⚠️  ASSISTANT_URL not set - design recommendations disabled")
	}

	services.InitMetrics()
	log.Println("✅ Prometheus metrics initialized")

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	publicHandler := handlers.NewPublicHandler(projectStore, contentStore, messageStore, pageCache)
	assistantHandler := handlers.NewAssistantHandler(recommendations)
	authHandler := handlers.NewAuthHandler(sessionAuth, cfg.AdminEmail, cfg.AdminPassword)
	projectHandler := handlers.NewProjectHandler(projectStore, pageCache, resolver)
	contentHandler := handlers.NewContentHandler(contentStore, pageCache, resolver)
	messageHandler := handlers.NewMessageHandler(messageStore)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Musefolio v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    8 * 1024 * 1024, // form posts carry at most a 5MB image
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	// Prometheus metrics middleware
	prometheus := fiberprometheus.New("musefolio")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
	log.Println("📊 Prometheus metrics endpoint enabled at /metrics")

	allowedOrigins := cfg.AllowedOrigins
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
		log.Println("⚠️  ALLOWED_ORIGINS not set, using development defaults")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept",
		AllowCredentials: allowedOrigins != "*",
	}))

	// Public API
	api := app.Group("/api")
	api.Get("/health", healthHandler.Handle)
	api.Get("/projects", publicHandler.ListProjects)
	api.Get("/projects/:slug", publicHandler.GetProject)
	api.Get("/content/:page", publicHandler.GetContent)
	api.Post("/contact", publicHandler.SubmitContact)
	api.Post("/assistant/recommendations", assistantHandler.Recommend)

	// Admin area behind the session gate; the gate lets the login page through
	admin := app.Group("/admin", middleware.SessionGate(sessionAuth))
	admin.Post("/login", authHandler.Login)
	admin.Post("/logout", authHandler.Logout)

	adminAPI := admin.Group("/api")
	adminAPI.Get("/projects", projectHandler.List)
	adminAPI.Post("/projects", projectHandler.Create)
	adminAPI.Get("/projects/:id", projectHandler.Get)
	adminAPI.Put("/projects/:id", projectHandler.Update)
	adminAPI.Delete("/projects/:id", projectHandler.Delete)

	adminAPI.Get("/content/home", contentHandler.GetHome)
	adminAPI.Put("/content/home", contentHandler.UpdateHome)
	adminAPI.Get("/content/about", contentHandler.GetAbout)
	adminAPI.Put("/content/about", contentHandler.UpdateAbout)
	adminAPI.Get("/content/contact", contentHandler.GetContact)
	adminAPI.Put("/content/contact", contentHandler.UpdateContact)

	adminAPI.Get("/messages", messageHandler.List)
	adminAPI.Post("/messages/:id/read", messageHandler.MarkRead)
	adminAPI.Post("/messages/:id/unread", messageHandler.MarkUnread)
	adminAPI.Delete("/messages/:id", messageHandler.Delete)

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️ Error shutting down server: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
