package usecase

import (
	"context"
	"errors"
	"time"

	"activity-report-service/internal/reports/core/domain"
	"activity-report-service/internal/reports/core/ports"
)

var (
	ErrFilenameRequired = errors.New("filename is required")
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// BuildReportInput selects a dataset and the filters to apply to it. Dates
// use the 2006-01-02 layout; either both are set or neither.
type BuildReportInput struct {
	Filename  string
	Fields    map[string]string
	StartDate string
	EndDate   string
}

// Report bundles the filtered records with their freshly computed snapshot.
type Report struct {
	Filename string
	Records  []domain.Record
	Snapshot *domain.Snapshot
	Filtered bool
}

type BuildReportUseCase struct {
	reader ports.DatasetReaderPort
}

func NewBuildReportUseCase(reader ports.DatasetReaderPort) *BuildReportUseCase {
	return &BuildReportUseCase{reader: reader}
}

func (uc *BuildReportUseCase) Execute(ctx context.Context, in BuildReportInput) (*Report, error) {
	if in.Filename == "" {
		return nil, ErrFilenameRequired
	}

	spec, err := buildFilterSpec(in)
	if err != nil {
		return nil, err
	}

	records, found, err := uc.reader.GetDataset(ctx, in.Filename)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrDatasetNotFound
	}

	filtered := domain.Filter(records, spec)

	return &Report{
		Filename: in.Filename,
		Records:  filtered,
		Snapshot: domain.Aggregate(filtered),
		Filtered: !spec.IsEmpty(),
	}, nil
}

func buildFilterSpec(in BuildReportInput) (domain.FilterSpec, error) {
	spec := domain.FilterSpec{}

	if len(in.Fields) > 0 {
		spec.Fields = in.Fields
	}

	// The range is only meaningful with both ends; a one-sided range is
	// rejected rather than silently ignored.
	if (in.StartDate == "") != (in.EndDate == "") {
		return spec, ErrInvalidDateRange
	}

	if in.StartDate != "" {
		start, err := time.Parse(domain.DayLayout, in.StartDate)
		if err != nil {
			return spec, ErrInvalidDateRange
		}
		end, err := time.Parse(domain.DayLayout, in.EndDate)
		if err != nil {
			return spec, ErrInvalidDateRange
		}
		if end.Before(start) {
			return spec, ErrInvalidDateRange
		}
		spec.Start = &start
		spec.End = &end
	}

	return spec, nil
}
