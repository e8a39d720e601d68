package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/phanindra-max/FrameworkLens/internal/cache"
	"github.com/phanindra-max/FrameworkLens/internal/catalog"
	"github.com/phanindra-max/FrameworkLens/internal/config"
	"github.com/phanindra-max/FrameworkLens/internal/repository"
	"github.com/phanindra-max/FrameworkLens/internal/service"
	"github.com/phanindra-max/FrameworkLens/internal/transport/rest"
	"github.com/phanindra-max/FrameworkLens/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Question catalog - loaded once, immutable afterwards
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("Failed to load catalog: ", err)
	}
	if cfg.CatalogPath != "" {
		log.Printf("Catalog loaded from %s: %d questions", cfg.CatalogPath, cat.Len())
	} else {
		log.Printf("Builtin catalog loaded: %d questions", cat.Len())
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	sessionRepo := repository.NewSessionRepo(db)
	answerRepo := repository.NewAnswerRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	reportCache := cache.NewReportCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	sessionSvc := service.NewSessionService(sessionRepo, answerRepo, sessionCache, cat, authSvc)
	answerSvc := service.NewAnswerService(sessionSvc, answerRepo, reportCache, cat)
	reportSvc := service.NewReportService(sessionSvc, sessionRepo, answerRepo, reportRepo, reportCache, cat)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	answerSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		Catalog:        cat,
		AuthService:    authSvc,
		SessionService: sessionSvc,
		AnswerService:  answerSvc,
		ReportService:  reportSvc,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/catalog")
		log.Println("  POST /v1/sessions")
		log.Println("  PUT  /v1/sessions/{id}/answers")
		log.Println("  GET  /v1/sessions/{id}/report")
		log.Println("  GET/POST /v1/admin/summary")
		log.Println("  WS   /v1/ws/sessions/{id}/live")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
