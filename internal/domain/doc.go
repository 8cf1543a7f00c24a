// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo, domain/project).
// This root package holds sentinel errors and the field-level validation
// error shared by every entity.
package domain
