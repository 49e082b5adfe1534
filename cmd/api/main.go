package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/procoat-sa/site-backend/config"
	"github.com/procoat-sa/site-backend/internal/auth"
	"github.com/procoat-sa/site-backend/internal/bootstrap"
	"github.com/procoat-sa/site-backend/internal/db"
	partnerrepo "github.com/procoat-sa/site-backend/internal/partners/repository"
	projectrepo "github.com/procoat-sa/site-backend/internal/projects/repository"
	"github.com/procoat-sa/site-backend/internal/revalidate"
	"github.com/procoat-sa/site-backend/internal/uploads"
)

const serviceName = "site-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer database.Close()

	cache := revalidate.NewNop()
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		cancel()
		defer redisClient.Close()

		cache = revalidate.New(redisClient)
	} else {
		log.Println("REDIS_ADDR not set, page-cache invalidation disabled")
	}

	var verifier auth.TokenVerifier
	if cfg.Auth.CredentialsPath != "" {
		client, err := auth.InitializeFirebase(&cfg.Auth)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
		verifier = client
	} else {
		log.Println("FIREBASE_CREDENTIALS_PATH not set, mutating endpoints will reject all requests")
	}

	var uploadStore *uploads.Store
	if cfg.Storage.Bucket != "" {
		uploadStore, err = uploads.NewStore(ctx, cfg.Storage)
		if err != nil {
			log.Fatalf("uploads: %v", err)
		}
	} else {
		log.Println("S3_BUCKET not set, /api/upload disabled")
	}

	if redisClient != nil && cfg.Cache.WarmSchedule != "" {
		warmer := revalidate.NewWarmer(redisClient, projectrepo.NewRepo(database), partnerrepo.NewRepo(database))
		if err := warmer.Start(cfg.Cache.WarmSchedule); err != nil {
			log.Fatalf("cache warmer: %v", err)
		}
		defer warmer.Stop()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
		CORSOrigins: cfg.Server.CORSOrigins,
		DB:          database,
		Verifier:    verifier,
		Cache:       cache,
		Uploads:     uploadStore,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
