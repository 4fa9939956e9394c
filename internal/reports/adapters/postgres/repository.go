package postgres

import (
	"context"
	"encoding/json"

	"activity-report-service/internal/reports/core/domain"
	"activity-report-service/internal/reports/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// DatasetRepository reads one dataset out of the registry payload written
// by the datasets area, decoding its rows into report records.
type DatasetRepository struct {
	db DB
}

func NewDatasetRepository(db DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

var _ ports.DatasetReaderPort = (*DatasetRepository)(nil)

const selectRegistrySQL = `
SELECT payload
FROM dataset_registry
WHERE id = 1;
`

// registryEntry mirrors the stored registry wire format; only the fields
// this adapter needs are decoded.
type registryEntry struct {
	Filename string          `json:"filename"`
	Data     json.RawMessage `json:"data"`
}

func (r *DatasetRepository) GetDataset(ctx context.Context, filename string) ([]domain.Record, bool, error) {
	rows, err := r.db.QueryContext(ctx, selectRegistrySQL)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, false, rows.Err()
	}

	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return nil, false, err
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	var entries []registryEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, false, err
	}

	for _, e := range entries {
		if e.Filename != filename {
			continue
		}
		var records []domain.Record
		if err := json.Unmarshal(e.Data, &records); err != nil {
			return nil, false, err
		}
		return records, true, nil
	}

	return nil, false, nil
}
