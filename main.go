// main.go
package main

import (
	"log"

	"movie-reviews/cmd"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/wire"
	"movie-reviews/pkg/catalog"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/sentiment"
	"movie-reviews/pkg/utils"

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
		zap.String("sentiment_provider", string(config.Sentiment.Provider)),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// External collaborators: film catalogue and sentiment classifier
	catalogClient := catalog.NewClient(config.Catalog, logger)
	classifier := sentiment.NewClassifier(config.Sentiment, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, catalogClient, classifier, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
