package postgres

import (
	"context"
	"encoding/json"

	"activity-report-service/internal/datasets/core/domain"
	"activity-report-service/internal/datasets/core/ports"
)

// RegistryRepository stores the whole dataset registry as a single JSONB
// payload, read and written wholesale like the blob store it stands in for.
type RegistryRepository struct {
	db DB
}

func NewRegistryRepository(db DB) *RegistryRepository {
	return &RegistryRepository{db: db}
}

var _ ports.RegistryPort = (*RegistryRepository)(nil)

const selectRegistrySQL = `
SELECT payload
FROM dataset_registry
WHERE id = 1;
`

const upsertRegistrySQL = `
INSERT INTO dataset_registry (id, payload)
VALUES (1, $1)
ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload;
`

func (r *RegistryRepository) ReadAll(ctx context.Context) ([]domain.Entry, error) {
	rows, err := r.db.QueryContext(ctx, selectRegistrySQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		// No payload row yet: empty registry.
		return nil, rows.Err()
	}

	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var entries []domain.Entry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *RegistryRepository) WriteAll(ctx context.Context, entries []domain.Entry) error {
	if entries == nil {
		entries = []domain.Entry{}
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, upsertRegistrySQL, payload)
	return err
}
