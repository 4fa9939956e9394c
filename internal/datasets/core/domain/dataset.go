package domain

import "encoding/json"

// Entry is one stored upload. Data is the raw uploaded JSON array; the
// registry is a blob boundary and never interprets it beyond the shape
// check done at upload time.
type Entry struct {
	Filename  string          `json:"filename"`
	Timestamp string          `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}
