package fiber

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"activity-report-service/internal/reports/core/domain"
	"activity-report-service/internal/reports/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type BuildReportUseCase interface {
	Execute(ctx context.Context, in usecase.BuildReportInput) (*usecase.Report, error)
}

type ExportReportUseCase interface {
	Execute(ctx context.Context, in usecase.BuildReportInput) ([]byte, error)
}

type AskUseCase interface {
	Execute(ctx context.Context, in usecase.AskInput) (string, error)
}

type ReportHandler struct {
	reportUC BuildReportUseCase
	exportUC ExportReportUseCase
	askUC    AskUseCase
}

func NewReportHandler(reportUC BuildReportUseCase, exportUC ExportReportUseCase, askUC AskUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC, exportUC: exportUC, askUC: askUC}
}

// buildReportInput collects the filter criteria from the query string.
// Every parameter except start_date/end_date is a field-substring filter
// keyed by the record field name.
func buildReportInput(c *fiber.Ctx) usecase.BuildReportInput {
	fields := make(map[string]string)
	for key, val := range c.Queries() {
		if key == "start_date" || key == "end_date" || val == "" {
			continue
		}
		fields[key] = val
	}

	return usecase.BuildReportInput{
		Filename:  c.Params("filename"),
		Fields:    fields,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
}

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrFilenameRequired),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrEmptyQuestion):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrDatasetNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "dataset_not_found",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

// GetRecords godoc
// @Summary List filtered records of a dataset
// @Description Applies field-substring and date-range filters and returns the surviving rows in source order
// @Tags Reports
// @Produce json
// @Param filename path string true "Dataset filename"
// @Param start_date query string false "Range start (YYYY-MM-DD, requires end_date)"
// @Param end_date query string false "Range end (YYYY-MM-DD, requires start_date)"
// @Success 200 {object} RecordsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{filename}/records [get]
func (h *ReportHandler) GetRecords(c *fiber.Ctx) error {
	rep, err := h.reportUC.Execute(c.UserContext(), buildReportInput(c))
	if err != nil {
		return reportError(c, err)
	}

	resp := RecordsResponse{
		Filename: rep.Filename,
		Filtered: rep.Filtered,
		Count:    len(rep.Records),
		Records:  rep.Records,
	}
	if resp.Records == nil {
		resp.Records = []domain.Record{}
	}

	// Advisory states, not errors.
	switch {
	case !rep.Filtered:
		resp.Message = "no filters applied; returning the full dataset"
	case len(rep.Records) == 0:
		resp.Message = "no records match the selected filters"
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetReport godoc
// @Summary Aggregate report over a dataset
// @Description Returns counts per user, document, tab, description, category, day and weekday/hour for the filtered records
// @Tags Reports
// @Produce json
// @Param filename path string true "Dataset filename"
// @Param start_date query string false "Range start (YYYY-MM-DD, requires end_date)"
// @Param end_date query string false "Range end (YYYY-MM-DD, requires start_date)"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{filename}/report [get]
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	rep, err := h.reportUC.Execute(c.UserContext(), buildReportInput(c))
	if err != nil {
		return reportError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toReportResponse(rep))
}

// ExportReport godoc
// @Summary Export filtered records as a spreadsheet
// @Description Renders the filtered rows as an xlsx workbook, headers in first-record key order
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param filename path string true "Dataset filename"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{filename}/export [get]
func (h *ReportHandler) ExportReport(c *fiber.Ctx) error {
	data, err := h.exportUC.Execute(c.UserContext(), buildReportInput(c))
	if err != nil {
		return reportError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="filtered_data.xlsx"`)
	return c.Status(http.StatusOK).Send(data)
}

// Ask godoc
// @Summary Ask the assistant a question about a dataset
// @Description Matches the question against the fixed pattern table and answers from a snapshot built at ask time
// @Tags Reports
// @Accept json
// @Produce json
// @Param filename path string true "Dataset filename"
// @Param request body AskRequest true "Question payload"
// @Success 200 {object} AskResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /datasets/{filename}/ask [post]
func (h *ReportHandler) Ask(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	in := usecase.AskInput{
		Filename: c.Params("filename"),
		Question: req.Question,
	}
	for key, val := range c.Queries() {
		if key == "start_date" || key == "end_date" || val == "" {
			continue
		}
		if in.Fields == nil {
			in.Fields = make(map[string]string)
		}
		in.Fields[key] = val
	}
	in.StartDate = c.Query("start_date")
	in.EndDate = c.Query("end_date")

	answer, err := h.askUC.Execute(c.UserContext(), in)
	if err != nil {
		return reportError(c, err)
	}

	return c.Status(http.StatusOK).JSON(AskResponse{
		Question: req.Question,
		Answer:   answer,
	})
}

// ListQuestions godoc
// @Summary List the assistant's suggested questions
// @Tags Reports
// @Produce json
// @Success 200 {object} QuestionsResponse
// @Router /questions [get]
func (h *ReportHandler) ListQuestions(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(QuestionsResponse{
		Questions: domain.Questions,
	})
}

// weekdayOrder fixes the weekday_hour row order in responses.
var weekdayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func toReportResponse(rep *usecase.Report) ReportResponse {
	s := rep.Snapshot

	resp := ReportResponse{
		Filename:        rep.Filename,
		Filtered:        rep.Filtered,
		Total:           s.Total,
		UniqueUsers:     s.Users.Len(),
		UniqueDocuments: s.Documents.Len(),
		UniqueTabs:      s.Tabs.Len(),
		Users:           toGroupCounts(s.Users.Entries()),
		Documents:       toGroupCounts(s.Documents.Entries()),
		Tabs:            toGroupCounts(s.Tabs.Entries()),
		Descriptions:    toGroupCounts(s.Descriptions.Entries()),
		Categories:      toGroupCounts(s.Categories.Entries()),
		TopUsers:        toGroupCounts(s.Users.Top(10)),
		TopTabs:         toGroupCounts(s.Tabs.Top(10)),
	}

	days := s.Days.Keys()
	sort.Strings(days)
	resp.PerDay = make([]GroupCountResponse, 0, len(days))
	for _, day := range days {
		resp.PerDay = append(resp.PerDay, GroupCountResponse{Key: day, Count: s.Days.Get(day)})
	}

	resp.WeekdayHour = make([]WeekdayHourCountResponse, 0)
	for _, weekday := range weekdayOrder {
		hours := s.HourOfWeek[weekday]
		for hour := 0; hour < 24; hour++ {
			if count, ok := hours[hour]; ok {
				resp.WeekdayHour = append(resp.WeekdayHour, WeekdayHourCountResponse{
					Weekday: weekday,
					Hour:    hour,
					Count:   count,
				})
			}
		}
	}

	resp.CategoriesByDay = make([]CategoryBreakdownResponse, 0, len(days))
	for _, day := range days {
		resp.CategoriesByDay = append(resp.CategoriesByDay, toBreakdown(day, s.CategoryByDay[day]))
	}

	users := s.Users.Keys()
	resp.CategoriesByUser = make([]CategoryBreakdownResponse, 0, len(users))
	for _, user := range users {
		resp.CategoriesByUser = append(resp.CategoriesByUser, toBreakdown(user, s.CategoryByUser[user]))
	}

	return resp
}

func toGroupCounts(entries []domain.KeyCount) []GroupCountResponse {
	out := make([]GroupCountResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, GroupCountResponse{Key: e.Key, Count: e.Count})
	}
	return out
}

func toBreakdown(key string, counts map[domain.Category]int) CategoryBreakdownResponse {
	return CategoryBreakdownResponse{
		Key:            key,
		Creative:       counts[domain.CategoryCreative],
		Viewing:        counts[domain.CategoryViewing],
		Administrative: counts[domain.CategoryAdministrative],
		Other:          counts[domain.CategoryOther],
	}
}
