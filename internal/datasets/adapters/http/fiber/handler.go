package fiber

import (
	"context"
	"errors"
	"net/http"

	"activity-report-service/internal/datasets/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type UploadDatasetUseCase interface {
	Execute(ctx context.Context, in usecase.UploadDatasetInput) (usecase.UploadDatasetResult, error)
}

type ListDatasetsUseCase interface {
	Execute(ctx context.Context) ([]usecase.DatasetSummary, error)
}

type DatasetHandler struct {
	uploadUC UploadDatasetUseCase
	listUC   ListDatasetsUseCase
}

func NewDatasetHandler(uploadUC UploadDatasetUseCase, listUC ListDatasetsUseCase) *DatasetHandler {
	return &DatasetHandler{uploadUC: uploadUC, listUC: listUC}
}

// UploadDataset godoc
// @Summary Upload a new dataset
// @Description Stores an activity log under its filename; duplicate filenames are rejected
// @Tags Datasets
// @Accept json
// @Produce json
// @Param request body UploadDatasetRequest true "Dataset payload"
// @Success 201 {object} UploadDatasetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets [post]
func (h *DatasetHandler) UploadDataset(c *fiber.Ctx) error {
	var req UploadDatasetRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.UploadDatasetInput{
		Filename: req.Filename,
		Data:     req.Data,
	}

	res, err := h.uploadUC.Execute(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFilenameRequired),
			errors.Is(err, usecase.ErrMalformedDataset):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_dataset",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrDuplicateFilename):
			return c.Status(http.StatusConflict).JSON(ErrorResponse{
				Error:   "duplicate_filename",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(UploadDatasetResponse{
		Status:    "created",
		Filename:  res.Filename,
		Timestamp: res.Timestamp,
		Records:   res.Records,
	})
}

// ListDatasets godoc
// @Summary List uploaded datasets
// @Description Returns filenames, upload timestamps and record counts in upload order
// @Tags Datasets
// @Produce json
// @Success 200 {object} ListDatasetsResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets [get]
func (h *DatasetHandler) ListDatasets(c *fiber.Ctx) error {
	summaries, err := h.listUC.Execute(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	resp := ListDatasetsResponse{
		Datasets: make([]DatasetSummaryResponse, 0, len(summaries)),
	}
	for _, s := range summaries {
		resp.Datasets = append(resp.Datasets, DatasetSummaryResponse{
			Filename:  s.Filename,
			Timestamp: s.Timestamp,
			Records:   s.Records,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}
