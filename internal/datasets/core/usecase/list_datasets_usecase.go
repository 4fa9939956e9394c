package usecase

import (
	"context"
	"encoding/json"

	"activity-report-service/internal/datasets/core/ports"
)

type DatasetSummary struct {
	Filename  string
	Timestamp string
	Records   int
}

type ListDatasetsUseCase struct {
	registry ports.RegistryPort
}

func NewListDatasetsUseCase(registry ports.RegistryPort) *ListDatasetsUseCase {
	return &ListDatasetsUseCase{registry: registry}
}

// Execute lists the stored datasets in upload order.
func (uc *ListDatasetsUseCase) Execute(ctx context.Context) ([]DatasetSummary, error) {
	entries, err := uc.registry.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DatasetSummary, 0, len(entries))
	for _, e := range entries {
		var rows []json.RawMessage
		// Stored entries passed the upload shape check; a decode failure
		// here just reports zero records.
		_ = json.Unmarshal(e.Data, &rows)
		out = append(out, DatasetSummary{
			Filename:  e.Filename,
			Timestamp: e.Timestamp,
			Records:   len(rows),
		})
	}
	return out, nil
}
