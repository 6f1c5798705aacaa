package task

import "time"

// --- Enumerations ---
// The empty string is the "none" sentinel for every enumeration.

// Priority classifies how urgent a task is.
type Priority string

const (
	PriorityNone     Priority = ""
	PriorityLow      Priority = "Low"
	PriorityHigh     Priority = "High"
	PriorityVeryHigh Priority = "Very High"
)

// IsValid reports whether p is one of the allowed priorities (sentinel included).
func (p Priority) IsValid() bool {
	switch p {
	case PriorityNone, PriorityLow, PriorityHigh, PriorityVeryHigh:
		return true
	}
	return false
}

// Category groups tasks for filtering.
type Category string

const (
	CategoryNone     Category = ""
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryWishlist Category = "Wishlist"
)

// IsValid reports whether c is one of the allowed categories (sentinel included).
func (c Category) IsValid() bool {
	switch c {
	case CategoryNone, CategoryWork, CategoryPersonal, CategoryWishlist:
		return true
	}
	return false
}

// Repeat is the recurrence label attached to a task. It is informational only.
type Repeat string

const (
	RepeatNone   Repeat = ""
	RepeatHours  Repeat = "Hours"
	RepeatDaily  Repeat = "Daily"
	RepeatWeekly Repeat = "Weekly"
	RepeatYearly Repeat = "Yearly"
)

// IsValid reports whether r is one of the allowed repeat values (sentinel included).
func (r Repeat) IsValid() bool {
	switch r {
	case RepeatNone, RepeatHours, RepeatDaily, RepeatWeekly, RepeatYearly:
		return true
	}
	return false
}

// --- Task Domain Model ---

// Task is a single to-do item.
type Task struct {
	ID        string
	TaskName  string
	Date      string
	Time      string
	Priority  Priority
	Category  Category
	Repeat    Repeat
	Completed bool
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	TaskName string
	Date     string
	Time     string
	Priority Priority
	Category Category
	Repeat   Repeat
}

// ListTasksInput filters a listing. A nil Category means no filter.
type ListTasksInput struct {
	Category *Category
}

// UpdateTaskInput carries a partial overwrite; nil fields are left unchanged.
// Completion is intentionally absent: it only changes through ToggleCompletion.
type UpdateTaskInput struct {
	ID       string
	TaskName *string
	Date     *string
	Time     *string
	Priority *Priority
	Category *Category
	Repeat   *Repeat
}

// IsEmpty reports whether the input names no field at all.
func (in UpdateTaskInput) IsEmpty() bool {
	return in.TaskName == nil && in.Date == nil && in.Time == nil &&
		in.Priority == nil && in.Category == nil && in.Repeat == nil
}

// --- UseCase Outputs ---

type TaskOutput struct {
	Task Task
}

type ListTasksOutput struct {
	Tasks []Task
}

type ProgressOutput struct {
	Progress Progress
}
