package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"activity-report-service/internal/datasets/core/domain"
	"activity-report-service/internal/datasets/core/usecase"
)

// fakeRegistry fakes RegistryPort.
type fakeRegistry struct {
	ReadFn      func(ctx context.Context) ([]domain.Entry, error)
	WriteFn     func(ctx context.Context, entries []domain.Entry) error
	lastWritten []domain.Entry
	writeCalled bool
}

func (f *fakeRegistry) ReadAll(ctx context.Context) ([]domain.Entry, error) {
	if f.ReadFn != nil {
		return f.ReadFn(ctx)
	}
	return nil, nil
}

func (f *fakeRegistry) WriteAll(ctx context.Context, entries []domain.Entry) error {
	f.writeCalled = true
	f.lastWritten = entries
	if f.WriteFn != nil {
		return f.WriteFn(ctx, entries)
	}
	return nil
}

const validData = `[{"User":"A","Description":"Open document","Time":"2024-01-01 10:00:00"},{"User":"B","Description":"Create part","Time":"2024-01-01 11:00:00"}]`

// ------------------------------------------------------------
// SUCCESS
// ------------------------------------------------------------

func TestUploadDataset_Success(t *testing.T) {
	registry := &fakeRegistry{}
	uc := usecase.NewUploadDatasetUseCase(registry)

	res, err := uc.Execute(context.Background(), usecase.UploadDatasetInput{
		Filename: "log.json",
		Data:     json.RawMessage(validData),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Filename != "log.json" {
		t.Errorf("expected filename echo, got %q", res.Filename)
	}
	if res.Records != 2 {
		t.Errorf("expected 2 records, got %d", res.Records)
	}
	if res.Timestamp == "" {
		t.Errorf("expected a server timestamp")
	}
	if !registry.writeCalled {
		t.Fatalf("expected WriteAll to be called")
	}
	if len(registry.lastWritten) != 1 || registry.lastWritten[0].Filename != "log.json" {
		t.Fatalf("unexpected written entries: %+v", registry.lastWritten)
	}
}

func TestUploadDataset_AppendsToExisting(t *testing.T) {
	registry := &fakeRegistry{
		ReadFn: func(ctx context.Context) ([]domain.Entry, error) {
			return []domain.Entry{{Filename: "old.json", Timestamp: "2024-01-01 00:00:00"}}, nil
		},
	}
	uc := usecase.NewUploadDatasetUseCase(registry)

	_, err := uc.Execute(context.Background(), usecase.UploadDatasetInput{
		Filename: "new.json",
		Data:     json.RawMessage(validData),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(registry.lastWritten) != 2 {
		t.Fatalf("expected 2 entries written, got %d", len(registry.lastWritten))
	}
	if registry.lastWritten[0].Filename != "old.json" || registry.lastWritten[1].Filename != "new.json" {
		t.Fatalf("expected append order preserved, got %+v", registry.lastWritten)
	}
}

// ------------------------------------------------------------
// DUPLICATE
// ------------------------------------------------------------

func TestUploadDataset_DuplicateFilenameRejected(t *testing.T) {
	registry := &fakeRegistry{
		ReadFn: func(ctx context.Context) ([]domain.Entry, error) {
			return []domain.Entry{{Filename: "log.json", Timestamp: "2024-01-01 00:00:00"}}, nil
		},
	}
	uc := usecase.NewUploadDatasetUseCase(registry)

	_, err := uc.Execute(context.Background(), usecase.UploadDatasetInput{
		Filename: "log.json",
		Data:     json.RawMessage(validData),
	})
	if !errors.Is(err, usecase.ErrDuplicateFilename) {
		t.Fatalf("expected ErrDuplicateFilename, got %v", err)
	}
	// The stored list must be left exactly as before the attempt.
	if registry.writeCalled {
		t.Fatalf("expected no write on duplicate upload")
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestUploadDataset_FilenameRequired(t *testing.T) {
	registry := &fakeRegistry{}
	uc := usecase.NewUploadDatasetUseCase(registry)

	_, err := uc.Execute(context.Background(), usecase.UploadDatasetInput{
		Data: json.RawMessage(validData),
	})
	if !errors.Is(err, usecase.ErrFilenameRequired) {
		t.Fatalf("expected ErrFilenameRequired, got %v", err)
	}
}

func TestUploadDataset_MalformedData(t *testing.T) {
	registry := &fakeRegistry{}
	uc := usecase.NewUploadDatasetUseCase(registry)

	cases := []string{
		``,
		`{"not":"an array"}`,
		`[1,2,3]`,
		`["strings"]`,
		`not json at all`,
	}

	for _, data := range cases {
		_, err := uc.Execute(context.Background(), usecase.UploadDatasetInput{
			Filename: "log.json",
			Data:     json.RawMessage(data),
		})
		if !errors.Is(err, usecase.ErrMalformedDataset) {
			t.Errorf("data %q: expected ErrMalformedDataset, got %v", data, err)
		}
	}
	if registry.writeCalled {
		t.Fatalf("expected no write for malformed uploads")
	}
}

// ------------------------------------------------------------
// STORE ERRORS
// ------------------------------------------------------------

func TestUploadDataset_ReadError(t *testing.T) {
	storeErr := errors.New("store down")
	registry := &fakeRegistry{
		ReadFn: func(ctx context.Context) ([]domain.Entry, error) {
			return nil, storeErr
		},
	}
	uc := usecase.NewUploadDatasetUseCase(registry)

	_, err := uc.Execute(context.Background(), usecase.UploadDatasetInput{
		Filename: "log.json",
		Data:     json.RawMessage(validData),
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestUploadDataset_WriteError(t *testing.T) {
	storeErr := errors.New("write failed")
	registry := &fakeRegistry{
		WriteFn: func(ctx context.Context, entries []domain.Entry) error {
			return storeErr
		},
	}
	uc := usecase.NewUploadDatasetUseCase(registry)

	_, err := uc.Execute(context.Background(), usecase.UploadDatasetInput{
		Filename: "log.json",
		Data:     json.RawMessage(validData),
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected write error to surface, got %v", err)
	}
}
