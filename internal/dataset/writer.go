package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/ShadowGuardAI/dso-data-type-generalizer/dtype"
	"github.com/ShadowGuardAI/dso-data-type-generalizer/internal/frame"
)

// Write serializes the frame to path, preserving column and row order.
// The whole output is rendered in memory first, so an error never leaves a
// half-written dataset behind.
func Write(f *frame.Frame, path string, opts Options) error {
	var (
		out []byte
		err error
	)

	switch opts.format(path) {
	case FormatJSONL:
		out, err = renderJSONL(f)
	default:
		out, err = renderCSV(f, opts.delimiter())
	}
	if err != nil {
		return fmt.Errorf("failed to render dataset: %w", err)
	}

	err = os.WriteFile(path, out, filePerm)
	if err != nil {
		return fmt.Errorf("failed to write dataset %s: %w", path, err)
	}

	return nil
}

func renderCSV(f *frame.Frame, delim rune) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	w.Comma = delim

	err := w.Write(f.Header())
	if err != nil {
		return nil, err
	}

	for i := 0; i < f.Rows(); i++ {
		err = w.Write(f.Record(i))
		if err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func renderJSONL(f *frame.Frame) ([]byte, error) {
	var buf bytes.Buffer

	for i := 0; i < f.Rows(); i++ {
		buf.WriteByte('{')

		for c := range f.Columns {
			col := &f.Columns[c]
			if c > 0 {
				buf.WriteByte(',')
			}

			key, err := json.Marshal(col.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')

			val, err := json.Marshal(typedCell(col.Cells[i], col.Kind))
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}

		buf.WriteByte('}')
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// typedCell turns a cell back into a JSON-native value for its column kind.
// Cells that do not parse (an empty cell in an otherwise numeric column)
// fall back to plain text.
func typedCell(cell string, kind dtype.Kind) any {
	switch kind {
	case dtype.KindInt:
		if v, err := strconv.ParseInt(cell, 10, 64); err == nil {
			return v
		}
	case dtype.KindFloat:
		if v, err := strconv.ParseFloat(cell, 64); err == nil {
			return v
		}
	case dtype.KindBool:
		if v, err := strconv.ParseBool(cell); err == nil {
			return v
		}
	}

	return cell
}
