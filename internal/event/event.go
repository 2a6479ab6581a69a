// Package event defines the synthetic event records loaded by colstat and
// their decomposition into column stores.
package event

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/ksuid"
)

type Event struct {
	ID      ksuid.KSUID   `json:"id"`
	Name    string        `json:"name"`
	Tags    []string      `json:"tags"`
	Score   *float64      `json:"score"`
	Status  Status        `json:"status"`
	Elapsed time.Duration `json:"elapsed"`
	// Weight is stored with half precision.
	Weight  float32   `json:"weight"`
	Samples [][]int64 `json:"samples"`
}

// Status is either a numeric code or a text message.  It is encoded in
// JSON as a number or a string accordingly.
type Status struct {
	Code   int64
	Text   string
	IsText bool
}

func Code(code int64) Status {
	return Status{Code: code}
}

func Text(text string) Status {
	return Status{Text: text, IsText: true}
}

func (s Status) MarshalJSON() ([]byte, error) {
	if s.IsText {
		return json.Marshal(s.Text)
	}
	return json.Marshal(s.Code)
}

func (s *Status) UnmarshalJSON(b []byte) error {
	*s = Status{}
	switch {
	case bytes.Equal(b, []byte("null")):
		return nil
	case len(b) > 0 && b[0] == '"':
		s.IsText = true
		return json.Unmarshal(b, &s.Text)
	default:
		return json.Unmarshal(b, &s.Code)
	}
}
