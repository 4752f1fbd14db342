package main

import (
	"context"
	"log"

	"anoa.com/campusplacement/internal/bootstrap"
	"anoa.com/campusplacement/internal/config"
	"anoa.com/campusplacement/internal/server"
	"anoa.com/campusplacement/internal/service"
	"anoa.com/campusplacement/pkg/database"
	"anoa.com/campusplacement/pkg/storage"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(database.Options{
		Host:     cfg.DBHost,
		User:     cfg.DBUser,
		Password: cfg.DBPass,
		Name:     cfg.DBName,
		Port:     cfg.DBPort,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := bootstrap.EnsureSuperAdmin(context.Background(), db, cfg); err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
	}

	var search service.SearchService
	if cfg.MeiliSearchHost != "" {
		client := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
		search = service.NewSearchService(client)
	}

	var documents storage.DocumentStorage
	if docs, err := storage.NewCloudinaryStorage(); err == nil {
		documents = docs
	} else {
		log.Printf("document storage disabled: %v", err)
	}

	srv, err := server.New(db, rdb, search, documents, cfg)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	if err := srv.Run(cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
