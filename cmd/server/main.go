package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/petcute_backend/internal/config"
	"github.com/Skotchmaster/petcute_backend/internal/es"
	"github.com/Skotchmaster/petcute_backend/internal/handlers"
	"github.com/Skotchmaster/petcute_backend/internal/logging"
	"github.com/Skotchmaster/petcute_backend/internal/mykafka"
	"github.com/Skotchmaster/petcute_backend/internal/repo"
	"github.com/Skotchmaster/petcute_backend/internal/seed"
	"github.com/Skotchmaster/petcute_backend/internal/service"
	"github.com/Skotchmaster/petcute_backend/internal/transport"
	httpserver "github.com/Skotchmaster/petcute_backend/internal/transport/http"
	"github.com/Skotchmaster/petcute_backend/pkg/db"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	ctx := context.Background()
	database, err := db.Open(ctx, configuration.DSN())
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	if configuration.SEED_DEMO_DATA == "true" {
		if err := seed.Run(database); err != nil {
			log.Fatalf("seed error: %v", err)
		}
	}

	prod := mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})

	rp := &repo.GormRepo{DB: database}
	authService := &service.AuthService{Repo: rp}

	deps := httpserver.Deps{
		AuthService:     authService,
		AuthHandler:     &handlers.AuthHandler{Service: authService, Producer: prod},
		CategoryHandler: &handlers.CategoryHandler{Repo: rp, Producer: prod},
		ProductHandler:  &handlers.ProductHandler{Repo: rp, Producer: prod, Indexer: &es.Indexer{}},
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		deps.ProductHandler.Indexer = &es.Indexer{ES: esClient, Index: "products"}
		deps.SearchHandler = &handlers.SearchHandler{ES: esClient, Index: "products"}
	}

	e := echo.New()
	e.Validator = transport.NewValidator()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
