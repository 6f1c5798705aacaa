package http

import (
	"todo-service/internal/task"
	"todo-service/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	TaskName string `json:"taskName"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Priority string `json:"priority"`
	Category string `json:"category"`
	Repeat   string `json:"repeat"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		TaskName: r.TaskName,
		Date:     r.Date,
		Time:     r.Time,
		Priority: task.Priority(r.Priority),
		Category: task.Category(r.Category),
		Repeat:   task.Repeat(r.Repeat),
	}
}

// updateReq uses pointers so an omitted field is distinguishable from "".
// A "completed" field in the body is ignored: completion only toggles.
type updateReq struct {
	ID       string  `json:"-"`
	TaskName *string `json:"taskName"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Priority *string `json:"priority"`
	Category *string `json:"category"`
	Repeat   *string `json:"repeat"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	in := task.UpdateTaskInput{
		ID:       r.ID,
		TaskName: r.TaskName,
		Date:     r.Date,
		Time:     r.Time,
	}
	if r.Priority != nil {
		p := task.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.Category != nil {
		c := task.Category(*r.Category)
		in.Category = &c
	}
	if r.Repeat != nil {
		rep := task.Repeat(*r.Repeat)
		in.Repeat = &rep
	}
	return in
}

// --- Response DTOs ---

// taskResp exposes the id as both "_id" and "id"; older clients read "_id".
type taskResp struct {
	MongoID   string            `json:"_id"`
	ID        string            `json:"id"`
	TaskName  string            `json:"taskName"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Priority  string            `json:"priority"`
	Category  string            `json:"category"`
	Repeat    string            `json:"repeat"`
	Completed bool              `json:"completed"`
	CreatedAt response.DateTime `json:"createdAt"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		MongoID:   t.ID,
		ID:        t.ID,
		TaskName:  t.TaskName,
		Date:      t.Date,
		Time:      t.Time,
		Priority:  string(t.Priority),
		Category:  string(t.Category),
		Repeat:    string(t.Repeat),
		Completed: t.Completed,
		CreatedAt: response.DateTime(t.CreatedAt),
	}
}

type singleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newSingleResp(out task.TaskOutput) singleResp {
	return singleResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}

type progressBody struct {
	HasData          bool   `json:"hasData"`
	Total            int    `json:"total"`
	CompletedCount   int    `json:"completedCount"`
	RemainingCount   int    `json:"remainingCount"`
	CompletedPercent string `json:"completedPercent,omitempty"`
	RemainingPercent string `json:"remainingPercent,omitempty"`
	AllCompleted     bool   `json:"allCompleted"`
}

type progressResp struct {
	Progress progressBody `json:"progress"`
}

func (h *handler) newProgressResp(out task.ProgressOutput) progressResp {
	p := out.Progress
	return progressResp{Progress: progressBody{
		HasData:          p.HasData,
		Total:            p.Total,
		CompletedCount:   p.CompletedCount,
		RemainingCount:   p.RemainingCount,
		CompletedPercent: p.CompletedPercent,
		RemainingPercent: p.RemainingPercent,
		AllCompleted:     p.AllCompleted,
	}}
}
