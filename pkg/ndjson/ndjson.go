// Package ndjson implements the newline-delimited JSON encoding used to
// stream bulk delivery results. Each record is one JSON object on its
// own line; the stream just ends after the last record.
package ndjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// Writer emits one JSON record per line. When the underlying writer is
// an http.Flusher the line is flushed immediately so the consumer can
// observe each record without waiting for the whole stream.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer on top of w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Encode marshals v, writes it followed by a newline and flushes
func (w *Writer) Encode(v any) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal record")
	}
	buf = append(buf, '\n')
	if _, err := w.w.Write(buf); err != nil {
		return goerr.Wrap(err, "failed to write record")
	}
	if f, ok := w.w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}

// Decoder reads records written by Writer. It buffers partial reads, so
// a single network read may carry zero, one or several complete records
// plus a partial tail; record boundaries are reconstructed regardless
// of how the bytes were split.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder creates a Decoder reading from r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads the next record into v. It returns io.EOF when the
// stream is exhausted. A final record without a trailing newline is
// still decoded.
func (d *Decoder) Decode(v any) error {
	for {
		line, err := d.r.ReadBytes('\n')
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) > 0 {
			if uerr := json.Unmarshal(trimmed, v); uerr != nil {
				return goerr.Wrap(uerr, "failed to unmarshal record")
			}
			return nil
		}
		if err != nil {
			if err == io.EOF {
				return io.EOF
			}
			return goerr.Wrap(err, "failed to read record")
		}
	}
}
