package todo

import (
	"slices"
	"strings"
)

// Status is a todo's completion state.
type Status string

// Category groups todos for filtering downstream.
type Category string

// Statuses in workflow order.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Categories.
const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryOther    Category = "other"
)

var (
	statuses   = []Status{StatusPending, StatusInProgress, StatusDone}
	categories = []Category{CategoryPersonal, CategoryWork, CategoryOther}
)

// Statuses returns every valid status in workflow order.
func Statuses() []Status { return slices.Clone(statuses) }

// Categories returns every valid category.
func Categories() []Category { return slices.Clone(categories) }

// IsValid reports whether s is one of the defined statuses. Matching is exact.
func (s Status) IsValid() bool { return slices.Contains(statuses, s) }

// IsValid reports whether c is one of the defined categories. Matching is exact.
func (c Category) IsValid() bool { return slices.Contains(categories, c) }

func (s Status) String() string   { return string(s) }
func (c Category) String() string { return string(c) }

// oneOf renders the allowed values for a violation message.
func oneOf[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "must be one of: " + strings.Join(parts, ", ")
}
