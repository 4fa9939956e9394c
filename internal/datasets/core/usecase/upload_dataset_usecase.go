package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"activity-report-service/internal/datasets/core/domain"
	"activity-report-service/internal/datasets/core/ports"
)

var (
	ErrFilenameRequired  = errors.New("filename is required")
	ErrMalformedDataset  = errors.New("dataset must be a JSON array of objects")
	ErrDuplicateFilename = errors.New("filename already uploaded")
)

// entryTimeLayout matches the timestamp format of the log records themselves.
const entryTimeLayout = "2006-01-02 15:04:05"

type UploadDatasetInput struct {
	Filename string
	Data     json.RawMessage
}

type UploadDatasetResult struct {
	Filename  string
	Timestamp string
	Records   int
}

type UploadDatasetUseCase struct {
	registry ports.RegistryPort
	now      func() time.Time
}

func NewUploadDatasetUseCase(registry ports.RegistryPort) *UploadDatasetUseCase {
	return &UploadDatasetUseCase{registry: registry, now: time.Now}
}

// Execute appends a new dataset under its filename. The stored list is only
// written after the payload shape and filename-uniqueness checks pass, so a
// rejected upload leaves the registry exactly as it was.
func (uc *UploadDatasetUseCase) Execute(ctx context.Context, in UploadDatasetInput) (UploadDatasetResult, error) {
	var res UploadDatasetResult

	if in.Filename == "" {
		return res, ErrFilenameRequired
	}

	count, err := recordCount(in.Data)
	if err != nil {
		return res, ErrMalformedDataset
	}

	entries, err := uc.registry.ReadAll(ctx)
	if err != nil {
		return res, err
	}

	for _, e := range entries {
		if e.Filename == in.Filename {
			return res, ErrDuplicateFilename
		}
	}

	entry := domain.Entry{
		Filename:  in.Filename,
		Timestamp: uc.now().UTC().Format(entryTimeLayout),
		Data:      in.Data,
	}

	if err := uc.registry.WriteAll(ctx, append(entries, entry)); err != nil {
		return res, err
	}

	res.Filename = entry.Filename
	res.Timestamp = entry.Timestamp
	res.Records = count
	return res, nil
}

// recordCount validates the array-of-objects shape and returns its length.
func recordCount(data json.RawMessage) (int, error) {
	if len(data) == 0 {
		return 0, errors.New("empty payload")
	}
	var shape []map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return 0, err
	}
	return len(shape), nil
}
