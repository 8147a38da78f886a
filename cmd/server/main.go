package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Monishapmj/book-review-backend/docs"
	"github.com/Monishapmj/book-review-backend/internal/handlers"
	"github.com/Monishapmj/book-review-backend/internal/logger"
	"github.com/Monishapmj/book-review-backend/internal/repository"
	"github.com/Monishapmj/book-review-backend/internal/server"
	"github.com/Monishapmj/book-review-backend/internal/service"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := loadConfig(); err != nil {
		// A missing config file is fine, the defaults cover it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
		}
	}

	log := logger.Get(viper.GetString("log.level"))

	// wire dependencies
	repos, err := repository.NewRepository(viper.GetString("books.file"))
	if err != nil {
		log.Fatalw("failed to load catalog", "err", err)
	}
	services := service.NewService(repos, viper.GetString("auth.signing_key"))
	apiHandler := handlers.NewHandler(services, log)

	log.Infow("catalog loaded", "books", services.BookCount(), "file", viper.GetString("books.file"))

	// start HTTP server
	srv := &server.Server{}
	go func() {
		port := viper.GetString("port")
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, apiHandler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.SetDefault("port", "8080")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("books.file", "data/books.json")
	viper.SetDefault("auth.signing_key", "change-me-in-production")

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// waitForShutdown blocks until SIGINT/SIGTERM, then drains in-flight requests.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
