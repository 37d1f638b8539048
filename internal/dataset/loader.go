package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ShadowGuardAI/dso-data-type-generalizer/internal/frame"
)

// Load reads the dataset at path into a frame and infers each column's kind.
func Load(path string, opts Options) (*frame.Frame, error) {
	switch opts.format(path) {
	case FormatJSONL:
		return loadJSONL(path)
	default:
		return loadCSV(path, opts.delimiter())
	}
}

func loadCSV(path string, delim rune) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comma = delim

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, ErrEmptyDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	f := frame.New(header)
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
		}

		err = f.AppendRow(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
		}
	}

	f.InferKinds()

	return f, nil
}

func loadJSONL(path string) (*frame.Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	var (
		f     *frame.Frame
		index map[string]int
	)

	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !gjson.Valid(line) {
			return nil, fmt.Errorf("dataset %s line %d: invalid JSON", path, n+1)
		}

		obj := gjson.Parse(line)
		if !obj.IsObject() {
			return nil, fmt.Errorf("dataset %s line %d: %w", path, n+1, ErrNotAnObject)
		}

		// the first object fixes the header, in document order
		if f == nil {
			var header []string
			obj.ForEach(func(key, _ gjson.Result) bool {
				header = append(header, key.String())
				return true
			})

			f = frame.New(header)
			index = make(map[string]int, len(header))
			for i, name := range header {
				index[name] = i
			}
		}

		rec := make([]string, len(index))
		var badKey error
		obj.ForEach(func(key, value gjson.Result) bool {
			i, ok := index[key.String()]
			if !ok {
				badKey = fmt.Errorf("dataset %s line %d: %w: %q", path, n+1, ErrUnknownColumn, key.String())
				return false
			}

			rec[i] = cellText(value)
			return true
		})
		if badKey != nil {
			return nil, badKey
		}

		err = f.AppendRow(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
		}
	}

	if f == nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, ErrEmptyDataset)
	}

	f.InferKinds()

	return f, nil
}

// cellText renders a JSON value as a cell. Numbers keep their source lexeme
// so that inference sees exactly what was written; null becomes the empty
// cell; nested values are carried verbatim as text.
func cellText(value gjson.Result) string {
	switch value.Type {
	case gjson.String:
		return value.String()
	case gjson.Number:
		return value.Raw
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.Null:
		return ""
	default:
		return value.Raw
	}
}
