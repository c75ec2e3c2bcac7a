package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/ratelimit"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	// Initialize database connection
	pool, err := database.ConnectPostgres(database.NewPostgresConfig())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.CreateSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	// Initialize repositories
	categoryRepo := postgres.NewCategoryRepository(pool)
	questionRepo := postgres.NewQuestionRepository(pool)

	// Initialize websocket hub
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize services
	triviaService := service.NewTriviaService(categoryRepo, questionRepo, hub)

	// Initialize handlers
	categoryHandler := handler.NewCategoryHandler(triviaService)
	questionHandler := handler.NewQuestionHandler(triviaService)
	quizHandler := handler.NewQuizHandler(triviaService)
	wsHandler := handler.NewWebSocketHandler(hub)

	// Initialize Echo
	e := echo.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Routes
	v1 := e.Group("/v1")

	// Per-IP rate limiting; RATE_LIMIT_PER_MINUTE=0 disables it and drops
	// the Redis requirement
	if limit := rateLimitPerMinute(); limit > 0 {
		redisClient, err := database.ConnectRedis(database.NewRedisConfig())
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		v1.Use(ratelimit.New(redisClient, limit, time.Minute).Middleware())
	}

	categoryHandler.Register(v1)
	questionHandler.Register(v1)
	quizHandler.Register(v1)

	// WebSocket route
	e.GET("/ws", wsHandler.HandleWebSocket)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	// Start server
	go func() {
		if err := e.Start(":" + getEnv("PORT", "8080")); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

func rateLimitPerMinute() int {
	raw := os.Getenv("RATE_LIMIT_PER_MINUTE")
	if raw == "" {
		return 120
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 120
	}
	return limit
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
