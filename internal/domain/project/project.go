// Package project defines the Project entity and its validation rules.
package project

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/go-draft-service/internal/domain"
)

// Field names used as validation keys and as editor property names.
const (
	FieldName        = "name"
	FieldDescription = "description"
)

// MaxNameLength is the longest allowed project name, in runes.
const MaxNameLength = 100

// Project represents a collection of related todos.
// It maps to the downstream "Group" concept; the ACL translates between the two.
type Project struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Project) Validate() error {
	return p.Violations().Err()
}

// Violations runs every rule and returns the failures keyed by field.
func (p *Project) Violations() domain.Violations {
	v := domain.Violations{}
	for _, m := range NameViolations(p.Name) {
		v.Add(FieldName, m)
	}
	for _, m := range DescriptionViolations(p.Description) {
		v.Add(FieldDescription, m)
	}
	return v
}

// NameViolations returns the messages for an invalid name, or nil. A name
// may fail both rules at once, so messages accumulate in rule order.
func NameViolations(name string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return []string{domain.MsgRequired}
	}

	var msgs []string
	if utf8.RuneCountInString(name) > MaxNameLength {
		msgs = append(msgs, fmt.Sprintf("must be at most %d characters", MaxNameLength))
	}
	if trimmed != name {
		msgs = append(msgs, "must not start or end with whitespace")
	}
	return msgs
}

// DescriptionViolations returns the messages for an invalid description, or nil.
func DescriptionViolations(desc string) []string {
	if strings.TrimSpace(desc) == "" {
		return []string{domain.MsgRequired}
	}
	return nil
}
