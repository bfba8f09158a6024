// main.go
package main

import (
	"log"

	"webuild-dashboard/cmd"
	"webuild-dashboard/internal/data/repository"
	"webuild-dashboard/internal/wire"
	"webuild-dashboard/pkg/database"
	"webuild-dashboard/pkg/mail"
	"webuild-dashboard/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Outbound mail; logs verification links instead when SMTP is not set.
	mailer, err := mail.NewClient(config.SMTP, config.App.BaseURL, logger)
	if err != nil {
		logger.Fatal("Failed to init mailer", zap.Error(err))
	}

	// Redis backs the rate limiter and is optional.
	var rdb *redis.Client
	if config.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
		})
		defer rdb.Close()
		logger.Info("Rate limiting enabled", zap.String("redis", config.Redis.Addr))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, mailer, rdb, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
