package fiber

import "activity-report-service/internal/reports/core/domain"

type GroupCountResponse struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type WeekdayHourCountResponse struct {
	Weekday string `json:"weekday"`
	Hour    int    `json:"hour"`
	Count   int    `json:"count"`
}

// CategoryBreakdownResponse is one row of a stacked category table, keyed
// by day or by user.
type CategoryBreakdownResponse struct {
	Key            string `json:"key"`
	Creative       int    `json:"creative"`
	Viewing        int    `json:"viewing"`
	Administrative int    `json:"administrative"`
	Other          int    `json:"other"`
}

type ReportResponse struct {
	Filename        string `json:"filename"`
	Filtered        bool   `json:"filtered"`
	Total           int    `json:"total"`
	UniqueUsers     int    `json:"unique_users"`
	UniqueDocuments int    `json:"unique_documents"`
	UniqueTabs      int    `json:"unique_tabs"`

	Users        []GroupCountResponse `json:"users"`
	Documents    []GroupCountResponse `json:"documents"`
	Tabs         []GroupCountResponse `json:"tabs"`
	Descriptions []GroupCountResponse `json:"descriptions"`
	Categories   []GroupCountResponse `json:"categories"`

	TopUsers []GroupCountResponse `json:"top_users"`
	TopTabs  []GroupCountResponse `json:"top_tabs"`

	PerDay      []GroupCountResponse       `json:"per_day"`
	WeekdayHour []WeekdayHourCountResponse `json:"weekday_hour"`

	CategoriesByDay  []CategoryBreakdownResponse `json:"categories_by_day"`
	CategoriesByUser []CategoryBreakdownResponse `json:"categories_by_user"`
}

type RecordsResponse struct {
	Filename string          `json:"filename"`
	Filtered bool            `json:"filtered"`
	Count    int             `json:"count"`
	Records  []domain.Record `json:"records"`
	Message  string          `json:"message,omitempty"`
}

type AskRequest struct {
	Question string `json:"question"`
}

type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"dataset_not_found"`
	Message string `json:"message" example:"dataset not found"`
}
