package response

import (
	"encoding/json"
	"time"
)

const (
	// DefaultErrorMessage hides internal failures from API clients.
	DefaultErrorMessage = "internal server error"

	// ContentTypeJSON is the content type for relayed bodies.
	ContentTypeJSON = "application/json; charset=utf-8"

	// DateTimeFormat is the ISO local-datetime layout used on the wire
	// for booking and comment timestamps.
	DateTimeFormat = "2006-01-02T15:04:05"
)

// ErrResp is the error body shared by both tiers.
type ErrResp struct {
	Error string `json:"error"`
}

// DateTime marshals as DateTimeFormat (no zone suffix).
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateTimeFormat, s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}
