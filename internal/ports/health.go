package ports

import "context"

// HealthChecker reports whether one dependency can serve requests. The
// downstream API client and the draft service each register one.
type HealthChecker interface {
	Name() string

	// HealthCheck returns nil when healthy. It must honour ctx's deadline;
	// the registry may bound each check with its own timeout.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checks for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
