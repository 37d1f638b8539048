package dtype

import "strings"

type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindInt
	KindFloat
	KindBool
	KindStr
	KindObject

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// String returns the CLI-facing name of the kind, matching the names
// accepted in a type map.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStr:
		return "str"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

func (k Kind) IsNumber() bool {
	return k == KindInt || k == KindFloat
}

// IsTextual reports whether values of the kind are carried verbatim as text.
func (k Kind) IsTextual() bool {
	return k == KindStr || k == KindObject
}

// FromName resolves a type name to its Kind. Names are matched
// case-insensitively with surrounding whitespace ignored. The zero Kind is
// returned for names outside the supported set.
func FromName(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int":
		return KindInt
	case "float":
		return KindFloat
	case "bool":
		return KindBool
	case "str":
		return KindStr
	case "object":
		return KindObject
	default:
		return 0
	}
}

// Names lists every supported type name in declaration order.
func Names() []string {
	names := make([]string, 0, KindTotal-1)
	for k := KindInt; int(k) < KindTotal; k++ {
		names = append(names, k.String())
	}

	return names
}
