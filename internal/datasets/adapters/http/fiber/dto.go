package fiber

import "encoding/json"

// UploadDatasetRequest represents a dataset upload payload
// @Description Dataset upload DTO; data is the raw activity log array
type UploadDatasetRequest struct {
	Filename string          `json:"filename"`
	Data     json.RawMessage `json:"data"`
}

type UploadDatasetResponse struct {
	Status    string `json:"status"`
	Filename  string `json:"filename"`
	Timestamp string `json:"timestamp"`
	Records   int    `json:"records"`
}

type DatasetSummaryResponse struct {
	Filename  string `json:"filename"`
	Timestamp string `json:"timestamp"`
	Records   int    `json:"records"`
}

type ListDatasetsResponse struct {
	Datasets []DatasetSummaryResponse `json:"datasets"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"duplicate_filename"`
	Message string `json:"message" example:"filename already uploaded"`
}
