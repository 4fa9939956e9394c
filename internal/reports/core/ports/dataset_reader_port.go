package ports

import (
	"context"

	"activity-report-service/internal/reports/core/domain"
)

type DatasetReaderPort interface {
	// GetDataset:
	//   found = true,  err = nil  -> records of the stored dataset
	//   found = false, err = nil  -> no dataset under that filename
	//   found = false, err != nil -> store error
	GetDataset(ctx context.Context, filename string) (records []domain.Record, found bool, err error)
}
