package usecase

import (
	"context"
	"errors"
	"strings"

	"activity-report-service/internal/reports/core/domain"
)

var ErrEmptyQuestion = errors.New("question is required")

// ReportBuilder is what AskUseCase needs from the report pipeline.
type ReportBuilder interface {
	Execute(ctx context.Context, in BuildReportInput) (*Report, error)
}

type AskInput struct {
	Filename  string
	Question  string
	Fields    map[string]string
	StartDate string
	EndDate   string
}

type AskUseCase struct {
	reports ReportBuilder
}

func NewAskUseCase(reports ReportBuilder) *AskUseCase {
	return &AskUseCase{reports: reports}
}

// Execute rebuilds the snapshot for the selected dataset (optionally
// filtered) and answers from it. The answer table is evaluated against the
// fresh snapshot on every call, never bound at startup.
func (uc *AskUseCase) Execute(ctx context.Context, in AskInput) (string, error) {
	if strings.TrimSpace(in.Question) == "" {
		return "", ErrEmptyQuestion
	}

	rep, err := uc.reports.Execute(ctx, BuildReportInput{
		Filename:  in.Filename,
		Fields:    in.Fields,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
	if err != nil {
		return "", err
	}

	return domain.Respond(in.Question, rep.Snapshot), nil
}
