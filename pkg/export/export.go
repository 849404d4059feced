// Package export writes pipeline results to files or streams.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/oxygene76/exoscope/internal/types"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatJSONL   Format = "jsonl"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatJSONL, FormatMsgpack:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want json, jsonl or msgpack)", s)
	}
}

// Write encodes a result set to w. JSON and msgpack carry the whole set;
// JSONL carries one ranked row per line.
func Write(w io.Writer, rs *types.ResultSet, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rs)
	case FormatJSONL:
		jw := NewJSONLWriter(w)
		for _, row := range rs.Rows {
			if err := jw.WriteRow(row); err != nil {
				return err
			}
		}
		return jw.Flush()
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(rs)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// WriteFile writes a result set to path, replacing any existing file.
func WriteFile(path string, rs *types.ResultSet, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(f, rs, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// JSONLWriter streams rows as newline-delimited JSON.
type JSONLWriter struct {
	bw *bufio.Writer
	n  int
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{bw: bufio.NewWriter(w)}
}

func (w *JSONLWriter) WriteRow(row types.DerivedRow) error {
	b, err := json.Marshal(row)
	if err != nil {
		return err
	}
	if _, err := w.bw.Write(b); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	w.n++
	return nil
}

// Rows returns the number of rows written so far.
func (w *JSONLWriter) Rows() int { return w.n }

func (w *JSONLWriter) Flush() error { return w.bw.Flush() }

// DecodeMsgpack reads a result set written with FormatMsgpack.
func DecodeMsgpack(r io.Reader) (*types.ResultSet, error) {
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	var rs types.ResultSet
	if err := dec.Decode(&rs); err != nil {
		return nil, err
	}
	return &rs, nil
}
