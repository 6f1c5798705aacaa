package task

import (
	"math"
	"strconv"
)

// Progress is the completed/remaining breakdown of a task snapshot.
// When HasData is false the counts are zero and the percentages empty.
type Progress struct {
	HasData          bool
	Total            int
	CompletedCount   int
	RemainingCount   int
	CompletedPercent string
	RemainingPercent string
	AllCompleted     bool
}

// ComputeProgress derives Progress from tasks without touching the store.
// Each bucket is rounded to one decimal on its own, so the two percentages
// may not add up to exactly 100.0.
func ComputeProgress(tasks []Task) Progress {
	total := len(tasks)
	if total == 0 {
		return Progress{}
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	remaining := total - completed

	return Progress{
		HasData:          true,
		Total:            total,
		CompletedCount:   completed,
		RemainingCount:   remaining,
		CompletedPercent: percent(completed, total),
		RemainingPercent: percent(remaining, total),
		AllCompleted:     completed == total,
	}
}

// percent rounds half away from zero, so 6.25 becomes "6.3".
func percent(count, total int) string {
	v := float64(count) / float64(total) * 100
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
}
