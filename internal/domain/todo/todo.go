// Package todo defines the Todo entity and its validation rules.
package todo

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-draft-service/internal/domain"
)

// Field names used as validation keys and as editor property names.
const (
	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldStatus          = "status"
	FieldCategory        = "category"
	FieldProgressPercent = "progress_percent"
	FieldProjectID       = "project_id"
)

// Length limits for free-text fields, in runes.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// Todo represents a task item with progress tracking.
type Todo struct {
	ID              int64
	Title           string
	Description     string
	Status          Status
	Category        Category
	ProgressPercent int
	ProjectID       *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	return t.Violations().Err()
}

// Violations runs every rule and returns the failures keyed by field.
func (t *Todo) Violations() domain.Violations {
	v := domain.Violations{}
	add := func(field string, msgs []string) {
		for _, m := range msgs {
			v.Add(field, m)
		}
	}

	add(FieldTitle, TitleViolations(t.Title))
	add(FieldDescription, DescriptionViolations(t.Description))
	add(FieldStatus, StatusViolations(t.Status))
	add(FieldCategory, CategoryViolations(t.Category))
	add(FieldProgressPercent, ProgressViolations(t.ProgressPercent, t.Status))
	add(FieldProjectID, ProjectIDViolations(t.ProjectID))

	return v
}

// TitleViolations returns the messages for an invalid title, or nil.
func TitleViolations(title string) []string {
	if strings.TrimSpace(title) == "" {
		return []string{domain.MsgRequired}
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return []string{fmt.Sprintf("must be at most %d characters", MaxTitleLength)}
	}
	return nil
}

// DescriptionViolations returns the messages for an invalid description, or nil.
func DescriptionViolations(desc string) []string {
	if strings.TrimSpace(desc) == "" {
		return []string{domain.MsgRequired}
	}
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return []string{fmt.Sprintf("must be at most %d characters", MaxDescriptionLength)}
	}
	return nil
}

// StatusViolations returns the messages for an invalid status, or nil.
func StatusViolations(s Status) []string {
	if !s.IsValid() {
		return []string{oneOf(statuses)}
	}
	return nil
}

// CategoryViolations returns the messages for an invalid category, or nil.
func CategoryViolations(c Category) []string {
	if !c.IsValid() {
		return []string{oneOf(categories)}
	}
	return nil
}

// ProgressViolations checks the range of progress and, because a finished
// todo is complete by definition, that done todos report 100.
func ProgressViolations(progress int, status Status) []string {
	var msgs []string
	if progress < 0 || progress > 100 {
		msgs = append(msgs, fmt.Sprintf("must be 0-100, got %d", progress))
	}
	if status == StatusDone && progress != 100 {
		msgs = append(msgs, "must be 100 when status is done")
	}
	return msgs
}

// ProjectIDViolations returns the messages for an invalid project reference.
// A nil ID (ungrouped todo) is valid.
func ProjectIDViolations(id *int64) []string {
	if id != nil && *id <= 0 {
		return []string{fmt.Sprintf("must be positive, got %d", *id)}
	}
	return nil
}
