package event

import (
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

// Reader decodes a stream of JSON events, one per line or otherwise
// separated by whitespace.
type Reader struct {
	dec *json.Decoder
	n   int
}

func NewReader(r io.Reader) *Reader {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return &Reader{dec: dec}
}

// Read returns the next event, or io.EOF at the end of the stream.
func (r *Reader) Read() (*Event, error) {
	var e Event
	if err := r.dec.Decode(&e); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, &SyntaxError{Event: r.n + 1, Err: err}
	}
	r.n++
	return &e, nil
}

// SyntaxError reports the position in the stream of an event that could
// not be decoded.
type SyntaxError struct {
	Event int
	Err   error
}

func (s *SyntaxError) Error() string {
	return "event " + strconv.Itoa(s.Event) + ": " + s.Err.Error()
}

func (s *SyntaxError) Unwrap() error {
	return s.Err
}

type Writer struct {
	enc *json.Encoder
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{json.NewEncoder(w)}
}

func (w *Writer) Write(e *Event) error {
	return w.enc.Encode(e)
}
