package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"todo-service/internal/task/repository"
	"todo-service/pkg/log"
)

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

// New creates a MongoDB-backed Repository over the given collection.
func New(coll *mongo.Collection, l log.Logger) repository.Repository {
	if coll == nil {
		panic("task/repository/mongo: collection is required")
	}
	return &implRepository{coll: coll, l: l}
}

// EnsureIndexes creates the indexes used by ListTasks.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("createdAt_desc")},
		{Keys: bson.D{{Key: "category", Value: 1}}, Options: options.Index().SetName("category_asc")},
	})
	if err != nil {
		return fmt.Errorf("task/repository/mongo.EnsureIndexes: %w", err)
	}
	return nil
}

// Ping checks the primary of the deployment backing the collection.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/mongo.%s", method)
}
