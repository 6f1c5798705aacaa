package task_test

import (
	"testing"

	"todo-service/internal/task"
)

func tasksWithCompleted(total, completed int) []task.Task {
	out := make([]task.Task, total)
	for i := 0; i < completed; i++ {
		out[i].Completed = true
	}
	return out
}

func TestComputeProgress(t *testing.T) {
	tcs := []struct {
		name  string
		tasks []task.Task
		want  task.Progress
	}{
		{
			name:  "no data",
			tasks: nil,
			want:  task.Progress{},
		},
		{
			name:  "one of three completed",
			tasks: tasksWithCompleted(3, 1),
			want: task.Progress{
				HasData: true, Total: 3, CompletedCount: 1, RemainingCount: 2,
				CompletedPercent: "33.3", RemainingPercent: "66.7",
			},
		},
		{
			name:  "all completed",
			tasks: tasksWithCompleted(2, 2),
			want: task.Progress{
				HasData: true, Total: 2, CompletedCount: 2, RemainingCount: 0,
				CompletedPercent: "100.0", RemainingPercent: "0.0", AllCompleted: true,
			},
		},
		{
			name:  "none completed",
			tasks: tasksWithCompleted(4, 0),
			want: task.Progress{
				HasData: true, Total: 4, CompletedCount: 0, RemainingCount: 4,
				CompletedPercent: "0.0", RemainingPercent: "100.0",
			},
		},
		{
			name:  "buckets rounded independently",
			tasks: tasksWithCompleted(6, 1),
			want: task.Progress{
				HasData: true, Total: 6, CompletedCount: 1, RemainingCount: 5,
				CompletedPercent: "16.7", RemainingPercent: "83.3",
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := task.ComputeProgress(tc.tasks)
			if got != tc.want {
				t.Errorf("ComputeProgress() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestComputeProgressDoesNotNormalise(t *testing.T) {
	// 1/16 = 6.25% and 15/16 = 93.75%: both round up and the sum is 100.1.
	got := task.ComputeProgress(tasksWithCompleted(16, 1))
	if got.CompletedPercent != "6.3" || got.RemainingPercent != "93.8" {
		t.Errorf("unexpected percentages %s/%s", got.CompletedPercent, got.RemainingPercent)
	}
}

func TestEnumValidity(t *testing.T) {
	if !task.PriorityNone.IsValid() || !task.PriorityVeryHigh.IsValid() {
		t.Error("expected sentinel and Very High priorities to be valid")
	}
	if task.Priority("Medium").IsValid() {
		t.Error("Medium is not an allowed priority")
	}
	if !task.CategoryWishlist.IsValid() || task.Category("Home").IsValid() {
		t.Error("unexpected category validity")
	}
	if !task.RepeatHours.IsValid() || task.Repeat("Monthly").IsValid() {
		t.Error("unexpected repeat validity")
	}
}
