// Package dataset loads structured tables into frames and writes them back.
//
// Two format families are supported:
//
//   - delimited text (CSV by default, any single-rune delimiter), where the
//     first record is the header
//   - JSON Lines (.jsonl / .ndjson), one object per line, where the first
//     object fixes the column set and order
//
// The format is picked from the file extension unless forced via Options.
package dataset

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrEmptyDataset  = errors.New("dataset has no header")
	ErrNotAnObject   = errors.New("line is not a JSON object")
	ErrUnknownColumn = errors.New("object has a key outside the header columns")
)

// Format identifies a dataset file format family.
type Format int

const (
	FormatAuto Format = iota // pick from the file extension
	FormatCSV
	FormatJSONL
)

// Options configures loading and writing. The zero value means CSV with a
// comma delimiter, auto-detected from the path.
type Options struct {
	Format    Format
	Delimiter rune // CSV field delimiter, ',' when zero
}

// Detect returns the format implied by the file extension.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	default:
		return FormatCSV
	}
}

func (o Options) format(path string) Format {
	if o.Format != FormatAuto {
		return o.Format
	}

	return Detect(path)
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}

	return o.Delimiter
}

// File permission constant for written datasets.
const filePerm = 0o644
