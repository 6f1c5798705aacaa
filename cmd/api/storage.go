package main

import (
	"context"
	"fmt"

	"todo-service/config"
	"todo-service/internal/task/repository"
	"todo-service/internal/task/repository/memory"
	taskMongo "todo-service/internal/task/repository/mongo"
	"todo-service/internal/task/repository/postgre"
	"todo-service/pkg/log"
	pkgMongo "todo-service/pkg/mongo"
	pkgPostgres "todo-service/pkg/postgres"
)

// openTaskRepository connects the configured backend and prepares its schema.
// The returned func releases the connection.
func openTaskRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMongo:
		client, err := pkgMongo.Connect(ctx, pkgMongo.Config{
			URI:     cfg.Mongo.URI,
			Timeout: cfg.Mongo.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		if err := taskMongo.EnsureIndexes(ctx, coll); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("ensure indexes: %w", err)
		}
		l.Infof(ctx, "MongoDB connected: %s.%s", cfg.Mongo.Database, cfg.Mongo.Collection)
		return taskMongo.New(coll, l), func() { _ = client.Disconnect(context.Background()) }, nil

	case config.StoragePostgres:
		pool, err := pkgPostgres.Connect(ctx, pkgPostgres.Config{
			DSN:      cfg.Postgres.DSN,
			MaxConns: cfg.Postgres.MaxConns,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := postgre.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		l.Info(ctx, "PostgreSQL connected and migrated")
		return postgre.New(pool, l), pool.Close, nil

	default:
		l.Warn(ctx, "Using in-memory task store, tasks are lost on restart")
		return memory.New(l), func() {}, nil
	}
}
