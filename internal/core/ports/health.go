package ports

import "context"

// HealthChecker reports the health of a storage backend.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the backend name (e.g., "postgresql", "redis").
	Name() string
}
