package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"transportledger/config"
	"transportledger/db/mongo"
	"transportledger/db/postgres"
	"transportledger/db/redis"
	"transportledger/repository"
)

// OpenStore connects to the backend named by cfg.DBType and returns the
// key-value store on top of it. Connecting is bounded by ctx and connectTimeout.
// The returned function closes the connection.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.KVStore, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch DBType(cfg.DBType) {
	case Memory, "":
		log.Println("[DB] using in-memory store, data is lost on exit")
		return repository.NewMemoryStore(), func() {}, nil

	case Postgres:
		if err := RunMigrations(cfg.PostgresURL); err != nil {
			return nil, nil, err
		}
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(ctx); err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}
		return repository.NewPostgresStore(pg.Conn), closer(pg), nil

	case Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(ctx); err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		return repository.NewMongoStore(mg.Client, cfg.MongoDB), closer(mg), nil

	case Redis:
		rd := redis.NewRedisDB(cfg.RedisAddr, cfg.RedisPassword)
		if err := rd.Connect(ctx); err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		return repository.NewRedisStore(rd.Client, "transportledger:"), closer(rd), nil
	}
	return nil, nil, fmt.Errorf("DB_TYPE %q not supported", cfg.DBType)
}

const connectTimeout = 10 * time.Second

func closer(d DB) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := d.Disconnect(ctx); err != nil {
			log.Printf("[DB] disconnect: %v", err)
		}
	}
}
