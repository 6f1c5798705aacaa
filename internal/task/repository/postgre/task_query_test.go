package postgre

import (
	"testing"

	"todo-service/internal/task"
	repo "todo-service/internal/task/repository"
)

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}
	work := task.CategoryWork
	none := task.CategoryNone

	tcs := []struct {
		name     string
		opt      repo.ListTasksOptions
		wantMods string
		wantArgs int
	}{
		{"all newest first", repo.ListTasksOptions{SortNewestFirst: true}, "ORDER BY created_at DESC, seq DESC", 0},
		{"category natural order", repo.ListTasksOptions{Category: &work}, "WHERE category = $1 ORDER BY seq ASC", 1},
		{"none sentinel", repo.ListTasksOptions{Category: &none}, "WHERE category = $1 ORDER BY seq ASC", 1},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			mods, args := r.buildListQuery(tc.opt)
			if mods != tc.wantMods {
				t.Errorf("mods = %q, want %q", mods, tc.wantMods)
			}
			if len(args) != tc.wantArgs {
				t.Errorf("args = %v, want %d args", args, tc.wantArgs)
			}
		})
	}
}

func TestBuildUpdateQuery(t *testing.T) {
	r := &implRepository{}

	name := "Buy milk"
	prio := task.PriorityHigh
	sets, args := r.buildUpdateQuery(repo.UpdateTaskOptions{ID: "x", TaskName: &name, Priority: &prio})
	if sets != "task_name = $1, priority = $2" {
		t.Errorf("unexpected SET clause %q", sets)
	}
	if len(args) != 2 || args[0] != "Buy milk" || args[1] != "High" {
		t.Errorf("unexpected args %v", args)
	}

	sets, args = r.buildUpdateQuery(repo.UpdateTaskOptions{ID: "x"})
	if sets != "" || len(args) != 0 {
		t.Errorf("expected empty clause, got %q %v", sets, args)
	}
}
