package ports

import (
	"context"

	"activity-report-service/internal/datasets/core/domain"
)

// RegistryPort is the blob-store boundary. The registry is read and written
// wholesale; a concurrent write is last-write-wins.
type RegistryPort interface {
	// ReadAll returns the full stored registry, empty if nothing stored yet.
	ReadAll(ctx context.Context) ([]domain.Entry, error)
	// WriteAll replaces the stored registry.
	WriteAll(ctx context.Context, entries []domain.Entry) error
}
