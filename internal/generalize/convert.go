package generalize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ShadowGuardAI/dso-data-type-generalizer/dtype"
)

var ErrNotRepresentable = errors.New("value is not representable in the target type")

// cellFunc converts one cell text from a source kind's lexical form to the
// target kind's. Conversions are deterministic; a cell that cannot be
// represented in the target type yields ErrNotRepresentable.
type cellFunc func(cell string) (string, error)

// convertor returns the conversion for a (source, target) pair. Every pair
// over the supported kinds is defined; identity pairs return nil, meaning
// the column only needs retyping.
//
// Narrowing policy (documented, fixed): float -> int truncates toward zero.
// NaN and infinities have no integer representation and fail.
func convertor(src, dst dtype.Kind) cellFunc {
	if src == dst {
		return nil
	}

	// object carries cells verbatim, so both directions behave like str
	if src == dtype.KindObject {
		src = dtype.KindStr
	}
	if dst == dtype.KindObject {
		dst = dtype.KindStr
	}
	if src == dst {
		return nil
	}

	switch src {
	case dtype.KindInt:
		switch dst {
		case dtype.KindFloat:
			return intToFloat
		case dtype.KindBool:
			return numberToBool
		case dtype.KindStr:
			return intToStr
		}
	case dtype.KindFloat:
		switch dst {
		case dtype.KindInt:
			return floatToInt
		case dtype.KindBool:
			return numberToBool
		case dtype.KindStr:
			return floatToStr
		}
	case dtype.KindBool:
		switch dst {
		case dtype.KindInt:
			return boolToInt
		case dtype.KindFloat:
			return boolToFloat
		case dtype.KindStr:
			return boolToStr
		}
	case dtype.KindStr:
		switch dst {
		case dtype.KindInt:
			return strToInt
		case dtype.KindFloat:
			return strToFloat
		case dtype.KindBool:
			return strToBool
		}
	}

	panic(fmt.Sprintf("no conversion defined for %s -> %s", src, dst))
}

func intToFloat(cell string) (string, error) {
	v, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return "", notRepresentable(cell, dtype.KindFloat)
	}

	return formatFloat(float64(v)), nil
}

func intToStr(cell string) (string, error) {
	v, err := strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return "", notRepresentable(cell, dtype.KindStr)
	}

	return strconv.FormatInt(v, 10), nil
}

func floatToInt(cell string) (string, error) {
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return "", notRepresentable(cell, dtype.KindInt)
	}

	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return "", notRepresentable(cell, dtype.KindInt)
	}

	return strconv.FormatInt(int64(t), 10), nil
}

func floatToStr(cell string) (string, error) {
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return "", notRepresentable(cell, dtype.KindStr)
	}

	return formatFloat(f), nil
}

func numberToBool(cell string) (string, error) {
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return "", notRepresentable(cell, dtype.KindBool)
	}

	return formatBool(f != 0), nil
}

func boolToInt(cell string) (string, error) {
	b, err := parseBool(cell)
	if err != nil {
		return "", err
	}

	if b {
		return "1", nil
	}

	return "0", nil
}

func boolToFloat(cell string) (string, error) {
	b, err := parseBool(cell)
	if err != nil {
		return "", err
	}

	if b {
		return "1.0", nil
	}

	return "0.0", nil
}

func boolToStr(cell string) (string, error) {
	b, err := parseBool(cell)
	if err != nil {
		return "", err
	}

	return formatBool(b), nil
}

func strToInt(cell string) (string, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
	if err != nil {
		return "", notRepresentable(cell, dtype.KindInt)
	}

	return strconv.FormatInt(v, 10), nil
}

func strToFloat(cell string) (string, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return "", notRepresentable(cell, dtype.KindFloat)
	}

	return formatFloat(f), nil
}

// strToBool accepts the textual boolean vocabulary:
// true, false, yes, no, on, off, 1, 0 (case-insensitive).
func strToBool(cell string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "true", "yes", "on", "1":
		return formatBool(true), nil
	case "false", "no", "off", "0":
		return formatBool(false), nil
	default:
		return "", notRepresentable(cell, dtype.KindBool)
	}
}

func parseBool(cell string) (bool, error) {
	switch strings.ToLower(cell) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, notRepresentable(cell, dtype.KindBool)
	}
}

// formatFloat renders a float with an explicit decimal point, so an integral
// value comes out as "1.0" rather than "1".
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsNaN(f) && !math.IsInf(f, 0) {
		s += ".0"
	}

	return s
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func notRepresentable(cell string, dst dtype.Kind) error {
	return fmt.Errorf("%w: %q as %s", ErrNotRepresentable, cell, dst)
}
