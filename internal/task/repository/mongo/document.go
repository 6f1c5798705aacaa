package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"todo-service/internal/task"
)

// taskDocument is the stored shape. Field names are the ones the mobile client reads.
type taskDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TaskName  string             `bson:"taskName"`
	Date      string             `bson:"date"`
	Time      string             `bson:"time"`
	Priority  string             `bson:"priority"`
	Category  string             `bson:"category"`
	Repeat    string             `bson:"repeat"`
	Completed bool               `bson:"completed"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d taskDocument) toTask() task.Task {
	return task.Task{
		ID:        d.ID.Hex(),
		TaskName:  d.TaskName,
		Date:      d.Date,
		Time:      d.Time,
		Priority:  task.Priority(d.Priority),
		Category:  task.Category(d.Category),
		Repeat:    task.Repeat(d.Repeat),
		Completed: d.Completed,
		CreatedAt: d.CreatedAt.UTC(),
	}
}
