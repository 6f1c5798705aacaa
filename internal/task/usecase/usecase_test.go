package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo-service/internal/task"
	"todo-service/internal/task/repository/memory"
	"todo-service/internal/task/usecase"
)

// steppingClock returns a clock that advances one second per call, so
// creation order and CreatedAt order agree.
func steppingClock() func() time.Time {
	t := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newUseCase() task.UseCase {
	return usecase.New(memory.New(&mockLogger{}), &mockLogger{}, usecase.WithClock(steppingClock()))
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid input appears once in List", func(t *testing.T) {
		uc := newUseCase()
		out, err := uc.Create(ctx, task.CreateTaskInput{
			TaskName: "Write report",
			Date:     "2025-06-02",
			Time:     "14:00",
			Priority: task.PriorityHigh,
			Category: task.CategoryWork,
			Repeat:   task.RepeatWeekly,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID == "" || out.Task.Completed || out.Task.CreatedAt.IsZero() {
			t.Fatalf("unexpected created task: %+v", out.Task)
		}

		list, _ := uc.List(ctx, task.ListTasksInput{})
		matches := 0
		for _, got := range list.Tasks {
			if got.ID == out.Task.ID {
				matches++
				if got != out.Task {
					t.Errorf("listed task %+v differs from created %+v", got, out.Task)
				}
			}
		}
		if matches != 1 {
			t.Errorf("expected exactly one listed record, got %d", matches)
		}
	})

	t.Run("Task name is trimmed", func(t *testing.T) {
		uc := newUseCase()
		out, err := uc.Create(ctx, task.CreateTaskInput{TaskName: "  Call mom  ", Time: "09:00"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.TaskName != "Call mom" {
			t.Errorf("expected trimmed name, got %q", out.Task.TaskName)
		}
	})

	invalid := []struct {
		name  string
		input task.CreateTaskInput
	}{
		{"Empty name", task.CreateTaskInput{TaskName: "", Time: "10:00"}},
		{"Whitespace name", task.CreateTaskInput{TaskName: " \t\n", Time: "10:00"}},
		{"Missing time", task.CreateTaskInput{TaskName: "x"}},
		{"Unknown priority", task.CreateTaskInput{TaskName: "x", Time: "10:00", Priority: "Medium"}},
		{"Unknown category", task.CreateTaskInput{TaskName: "x", Time: "10:00", Category: "Home"}},
		{"Unknown repeat", task.CreateTaskInput{TaskName: "x", Time: "10:00", Repeat: "Monthly"}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			uc := newUseCase()
			_, err := uc.Create(ctx, tc.input)
			if !errors.Is(err, task.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			list, _ := uc.List(ctx, task.ListTasksInput{})
			if len(list.Tasks) != 0 {
				t.Errorf("store must be unchanged, has %d tasks", len(list.Tasks))
			}
		})
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	w1, _ := uc.Create(ctx, task.CreateTaskInput{TaskName: "w1", Time: "1", Category: task.CategoryWork})
	p1, _ := uc.Create(ctx, task.CreateTaskInput{TaskName: "p1", Time: "1", Category: task.CategoryPersonal})
	w2, _ := uc.Create(ctx, task.CreateTaskInput{TaskName: "w2", Time: "1", Category: task.CategoryWork})
	n1, _ := uc.Create(ctx, task.CreateTaskInput{TaskName: "n1", Time: "1"})

	t.Run("Unfiltered newest first", func(t *testing.T) {
		out, err := uc.List(ctx, task.ListTasksInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{n1.Task.ID, w2.Task.ID, p1.Task.ID, w1.Task.ID}
		if len(out.Tasks) != len(want) {
			t.Fatalf("expected %d tasks, got %d", len(want), len(out.Tasks))
		}
		for i, id := range want {
			if out.Tasks[i].ID != id {
				t.Errorf("position %d: want %s got %s", i, id, out.Tasks[i].ID)
			}
		}
	})

	t.Run("Category filter returns only that category", func(t *testing.T) {
		work := task.CategoryWork
		out, err := uc.List(ctx, task.ListTasksInput{Category: &work})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 2 {
			t.Fatalf("expected 2 Work tasks, got %d", len(out.Tasks))
		}
		for _, got := range out.Tasks {
			if got.Category != task.CategoryWork {
				t.Errorf("unexpected category %q", got.Category)
			}
		}
	})

	t.Run("None sentinel filter", func(t *testing.T) {
		none := task.CategoryNone
		out, _ := uc.List(ctx, task.ListTasksInput{Category: &none})
		if len(out.Tasks) != 1 || out.Tasks[0].ID != n1.Task.ID {
			t.Errorf("expected only the uncategorised task, got %+v", out.Tasks)
		}
	})

	t.Run("Unknown category filter", func(t *testing.T) {
		bad := task.Category("Home")
		_, err := uc.List(ctx, task.ListTasksInput{Category: &bad})
		if !errors.Is(err, task.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Only named fields change", func(t *testing.T) {
		uc := newUseCase()
		created, _ := uc.Create(ctx, task.CreateTaskInput{
			TaskName: "old", Date: "2025-01-01", Time: "08:00",
			Priority: task.PriorityLow, Category: task.CategoryWork, Repeat: task.RepeatDaily,
		})
		toggled, _ := uc.ToggleCompletion(ctx, created.Task.ID)

		out, err := uc.Update(ctx, task.UpdateTaskInput{ID: created.Task.ID, TaskName: strPtr("X")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := toggled.Task
		want.TaskName = "X"
		if out.Task != want {
			t.Errorf("update changed more than taskName:\n got  %+v\n want %+v", out.Task, want)
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		uc := newUseCase()
		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "missing", TaskName: strPtr("X")})
		if !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Blank name rejected", func(t *testing.T) {
		uc := newUseCase()
		created, _ := uc.Create(ctx, task.CreateTaskInput{TaskName: "keep", Time: "08:00"})
		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: created.Task.ID, TaskName: strPtr("   ")})
		if !errors.Is(err, task.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		detail, _ := uc.Detail(ctx, created.Task.ID)
		if detail.Task.TaskName != "keep" {
			t.Errorf("rejected update must not mutate, got %q", detail.Task.TaskName)
		}
	})

	// Update deliberately does not re-check enumeration membership.
	t.Run("Off-list enumeration values are accepted", func(t *testing.T) {
		uc := newUseCase()
		created, _ := uc.Create(ctx, task.CreateTaskInput{TaskName: "x", Time: "08:00"})
		prio := task.Priority("Medium")
		cat := task.Category("Home")
		rep := task.Repeat("Monthly")

		out, err := uc.Update(ctx, task.UpdateTaskInput{ID: created.Task.ID, Priority: &prio, Category: &cat, Repeat: &rep})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Priority != "Medium" || out.Task.Category != "Home" || out.Task.Repeat != "Monthly" {
			t.Errorf("expected permissive update, got %+v", out.Task)
		}
	})

	t.Run("Empty update returns current record", func(t *testing.T) {
		uc := newUseCase()
		created, _ := uc.Create(ctx, task.CreateTaskInput{TaskName: "x", Time: "08:00"})
		out, err := uc.Update(ctx, task.UpdateTaskInput{ID: created.Task.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task != created.Task {
			t.Errorf("expected unchanged task, got %+v", out.Task)
		}
	})
}

func TestToggleCompletion(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	created, _ := uc.Create(ctx, task.CreateTaskInput{TaskName: "x", Time: "08:00"})

	first, err := uc.ToggleCompletion(ctx, created.Task.ID)
	if err != nil || !first.Task.Completed {
		t.Fatalf("first toggle: completed=%v err=%v", first.Task.Completed, err)
	}
	second, err := uc.ToggleCompletion(ctx, created.Task.ID)
	if err != nil || second.Task.Completed != created.Task.Completed {
		t.Fatalf("toggle twice must restore original, got %v err=%v", second.Task.Completed, err)
	}

	if _, err := uc.ToggleCompletion(ctx, "missing"); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()
	created, _ := uc.Create(ctx, task.CreateTaskInput{TaskName: "x", Time: "08:00"})
	id := created.Task.ID

	if err := uc.Delete(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := map[string]error{}
	_, checks["Detail"] = uc.Detail(ctx, id)
	_, checks["Update"] = uc.Update(ctx, task.UpdateTaskInput{ID: id, TaskName: strPtr("y")})
	_, checks["ToggleCompletion"] = uc.ToggleCompletion(ctx, id)
	checks["Delete"] = uc.Delete(ctx, id)

	for op, err := range checks {
		if !errors.Is(err, task.ErrNotFound) {
			t.Errorf("%s after delete: expected ErrNotFound, got %v", op, err)
		}
	}
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	out, err := uc.Progress(ctx, task.ListTasksInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Progress.HasData {
		t.Errorf("empty store must report no data, got %+v", out.Progress)
	}

	a, _ := uc.Create(ctx, task.CreateTaskInput{TaskName: "a", Time: "1"})
	uc.Create(ctx, task.CreateTaskInput{TaskName: "b", Time: "1"})
	uc.Create(ctx, task.CreateTaskInput{TaskName: "c", Time: "1"})
	uc.ToggleCompletion(ctx, a.Task.ID)

	out, _ = uc.Progress(ctx, task.ListTasksInput{})
	p := out.Progress
	if p.CompletedCount != 1 || p.RemainingCount != 2 || p.CompletedPercent != "33.3" || p.RemainingPercent != "66.7" {
		t.Errorf("unexpected progress %+v", p)
	}
}

func TestBuyMilkScenario(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	created, err := uc.Create(ctx, task.CreateTaskInput{TaskName: "Buy milk", Time: "10:00"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Task.Completed || created.Task.ID == "" || created.Task.Priority != task.PriorityNone {
		t.Fatalf("unexpected created task %+v", created.Task)
	}

	toggled, err := uc.ToggleCompletion(ctx, created.Task.ID)
	if err != nil || !toggled.Task.Completed {
		t.Fatalf("toggle: %+v err=%v", toggled.Task, err)
	}

	list, _ := uc.List(ctx, task.ListTasksInput{})
	if len(list.Tasks) != 1 || !list.Tasks[0].Completed {
		t.Fatalf("expected completed task in list, got %+v", list.Tasks)
	}

	if err := uc.Delete(ctx, created.Task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ = uc.List(ctx, task.ListTasksInput{})
	if len(list.Tasks) != 0 {
		t.Errorf("expected empty list after delete, got %+v", list.Tasks)
	}
}

func TestStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(downRepo{}, &mockLogger{})

	_, createErr := uc.Create(ctx, task.CreateTaskInput{TaskName: "x", Time: "1"})
	_, listErr := uc.List(ctx, task.ListTasksInput{})
	_, detailErr := uc.Detail(ctx, "id")
	_, updateErr := uc.Update(ctx, task.UpdateTaskInput{ID: "id", TaskName: strPtr("y")})
	_, toggleErr := uc.ToggleCompletion(ctx, "id")
	deleteErr := uc.Delete(ctx, "id")
	_, progressErr := uc.Progress(ctx, task.ListTasksInput{})

	for i, err := range []error{createErr, listErr, detailErr, updateErr, toggleErr, deleteErr, progressErr} {
		if !errors.Is(err, task.ErrStoreUnavailable) {
			t.Errorf("call %d: expected ErrStoreUnavailable, got %v", i, err)
		}
		if errors.Is(err, task.ErrNotFound) || errors.Is(err, task.ErrValidation) {
			t.Errorf("call %d: error must carry exactly one kind, got %v", i, err)
		}
	}

	// Validation still wins before the store is touched.
	if _, err := uc.Create(ctx, task.CreateTaskInput{}); !errors.Is(err, task.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
