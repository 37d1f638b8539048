package frame

import (
	"strconv"
	"strings"

	"github.com/ShadowGuardAI/dso-data-type-generalizer/dtype"
)

// InferKinds assigns every column the narrowest kind that fits all of its
// cells: int, then float, then bool, then str. Empty columns infer str.
func (f *Frame) InferKinds() {
	for i := range f.Columns {
		f.Columns[i].Kind = inferKind(f.Columns[i].Cells)
	}
}

func inferKind(cells []string) dtype.Kind {
	if len(cells) == 0 {
		return dtype.KindStr
	}

	allInt, allFloat, allBool := true, true, true

	for _, cell := range cells {
		if allInt {
			_, err := strconv.ParseInt(cell, 10, 64)
			allInt = err == nil
		}

		if allFloat {
			_, err := strconv.ParseFloat(cell, 64)
			allFloat = err == nil
		}

		if allBool {
			allBool = isBoolWord(cell)
		}

		if !allInt && !allFloat && !allBool {
			return dtype.KindStr
		}
	}

	switch {
	case allInt:
		return dtype.KindInt
	case allFloat:
		return dtype.KindFloat
	case allBool:
		return dtype.KindBool
	default:
		return dtype.KindStr
	}
}

// isBoolWord matches the strict boolean vocabulary used for inference.
// The generalizer accepts a wider vocabulary when converting str to bool.
func isBoolWord(cell string) bool {
	switch strings.ToLower(cell) {
	case "true", "false":
		return true
	default:
		return false
	}
}
