package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimeLayout is the timestamp format used by the activity logs.
const TimeLayout = "2006-01-02 15:04:05"

// Record is a typed view over one raw log object. The source key order and
// key presence are kept: the filter engine distinguishes an absent key from
// a present-but-mismatching one, and the export writes headers in the order
// the first record declared them.
type Record struct {
	Keys   []string
	Values map[string]any
}

// UnmarshalJSON decodes a single JSON object, preserving key order.
func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("record must be a JSON object")
	}

	r.Keys = nil
	r.Values = make(map[string]any)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.New("record key must be a string")
		}

		var val any
		if err := dec.Decode(&val); err != nil {
			return err
		}

		if _, seen := r.Values[key]; !seen {
			r.Keys = append(r.Keys, key)
		}
		r.Values[key] = val
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON writes the record back as an object in source key order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.Values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Has reports whether the key is present in the source object.
func (r Record) Has(key string) bool {
	_, ok := r.Values[key]
	return ok
}

// Field returns the string form of a field value and whether the key is
// present. Non-string values are rendered with their literal form.
func (r Record) Field(key string) (string, bool) {
	v, ok := r.Values[key]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case nil:
		return "", true
	default:
		return fmt.Sprint(t), true
	}
}

// fieldOrUnknown defaults only on absent keys; a present empty value is
// returned as-is.
func (r Record) fieldOrUnknown(key string) string {
	if v, ok := r.Field(key); ok {
		return v
	}
	return "Unknown"
}

func (r Record) User() string        { return r.fieldOrUnknown("User") }
func (r Record) Document() string    { return r.fieldOrUnknown("Document") }
func (r Record) Tab() string         { return r.fieldOrUnknown("Tab") }
func (r Record) Description() string { return r.fieldOrUnknown("Description") }

// Timestamp parses the record's Time field. ok=false when the field is
// absent or does not parse; such records are dropped from time-based
// groupings only.
func (r Record) Timestamp() (time.Time, bool) {
	v, ok := r.Field("Time")
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(TimeLayout, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
