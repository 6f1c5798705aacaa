package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"todo-service/internal/task"
	repo "todo-service/internal/task/repository"
)

// CreateTask inserts a new document under a fresh ObjectID.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	doc := taskDocument{
		ID:        primitive.NewObjectID(),
		TaskName:  opt.TaskName,
		Date:      opt.Date,
		Time:      opt.Time,
		Priority:  string(opt.Priority),
		Category:  string(opt.Category),
		Repeat:    string(opt.Repeat),
		Completed: false,
		// BSON dates carry millisecond precision.
		CreatedAt: opt.CreatedAt.UTC().Truncate(time.Millisecond),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return doc.toTask(), nil
}

// GetOneTask retrieves a task by id. Malformed or unknown ids return a zero Task.
func (r *implRepository) GetOneTask(ctx context.Context, id string) (task.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return task.Task{}, nil
	}

	var doc taskDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return doc.toTask(), nil
}

// ListTasks returns tasks matching opt. Filtered listings come back in _id order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	filter := bson.M{}
	if opt.Category != nil {
		filter["category"] = string(*opt.Category)
	}

	findOpts := options.Find()
	if opt.SortNewestFirst {
		findOpts.SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	} else {
		findOpts.SetSort(bson.D{{Key: "_id", Value: 1}})
	}

	cur, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	var docs []taskDocument
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]task.Task, 0, len(docs))
	for _, d := range docs {
		tasks = append(tasks, d.toTask())
	}
	return tasks, nil
}

// UpdateTask $sets the provided fields. Returns zero-value Task when not found.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	oid, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return task.Task{}, nil
	}

	set := buildSet(opt)
	if len(set) == 0 {
		return r.GetOneTask(ctx, opt.ID)
	}

	var doc taskDocument
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return doc.toTask(), nil
}

// ToggleTaskCompletion negates completed with a pipeline update, in one round trip.
func (r *implRepository) ToggleTaskCompletion(ctx context.Context, id string) (task.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return task.Task{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "completed", Value: bson.D{{Key: "$not", Value: "$completed"}}}}}},
	}

	var doc taskDocument
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ToggleTaskCompletion"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return doc.toTask(), nil
}

// DeleteTask removes a document and reports whether one existed.
func (r *implRepository) DeleteTask(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return res.DeletedCount > 0, nil
}

func buildSet(opt repo.UpdateTaskOptions) bson.M {
	set := bson.M{}
	if opt.TaskName != nil {
		set["taskName"] = *opt.TaskName
	}
	if opt.Date != nil {
		set["date"] = *opt.Date
	}
	if opt.Time != nil {
		set["time"] = *opt.Time
	}
	if opt.Priority != nil {
		set["priority"] = string(*opt.Priority)
	}
	if opt.Category != nil {
		set["category"] = string(*opt.Category)
	}
	if opt.Repeat != nil {
		set["repeat"] = string(*opt.Repeat)
	}
	return set
}
