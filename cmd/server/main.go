package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/ideapulse/idea-feedback-backend/internal/database"
	"github.com/ideapulse/idea-feedback-backend/internal/handlers"
	"github.com/ideapulse/idea-feedback-backend/internal/repository"
	"github.com/ideapulse/idea-feedback-backend/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Connect to the database
	db, err := database.Connect(context.Background(), os.Getenv("MONGODB_URI"), os.Getenv("DB_NAME"))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close(context.Background())

	// Repositories and services
	ideaRepo := repository.NewIdeaRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	if err := ideaRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to create idea indexes:", err)
	}
	if err := feedbackRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to create feedback indexes:", err)
	}

	ideaService := services.NewIdeaService(ideaRepo, feedbackRepo)
	feedbackService := services.NewFeedbackService(ideaRepo, feedbackRepo)
	h := handlers.New(ideaService, feedbackService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: os.Getenv("FRONTEND_URL"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	// Routes
	api := app.Group("/api")

	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ping"})
	})

	// Idea routes
	api.Post("/ideas", h.CreateIdea)
	api.Get("/ideas", h.GetIdeas)
	api.Get("/ideas/:id", h.GetIdea)
	api.Put("/ideas/:id", h.UpdateIdea)
	api.Delete("/ideas/:id", h.DeleteIdea)

	// Feedback routes
	api.Post("/ideas/:id/feedback", h.SubmitFeedback)
	api.Get("/ideas/:id/feedback", h.GetFeedback)
	api.Get("/ideas/:id/dashboard", h.GetDashboard)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
