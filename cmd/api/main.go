package main

import (
	"context"
	"log"

	"chatbox-backend/config"
	"chatbox-backend/internal/completion"
	"chatbox-backend/internal/handler"
	"chatbox-backend/internal/redis"
	"chatbox-backend/internal/repository"
	"chatbox-backend/internal/server"
	"chatbox-backend/internal/services"
	"chatbox-backend/pkg/database"
	"chatbox-backend/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	defer l.Sync()
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	if err := database.SeedAdmin(context.Background(), db, cfg, l); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	redisClient := redis.NewClient(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	limiter := redis.NewRateLimiter(redisClient, redis.DefaultRateLimitConfig())

	accountRepo := repository.NewAccountRepository(db)
	chatRepo := repository.NewChatRepository(db)

	completer := completion.NewOpenAIClient(completion.Config{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.CompletionModel,
		MaxTokens:   cfg.CompletionMaxTokens,
		Temperature: cfg.CompletionTemperature,
	})

	authService := services.NewAuthService(accountRepo, cfg)
	accountService := services.NewAccountService(accountRepo)
	chatService := services.NewChatService(chatRepo, completer)

	handlers := &server.Handlers{
		Auth:  handler.NewAuthHandler(authService),
		Admin: handler.NewAdminHandler(accountService),
		User:  handler.NewUserHandler(accountService),
		Chat:  handler.NewChatHandler(chatService),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, authService, limiter, db)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}
