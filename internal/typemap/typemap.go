package typemap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ShadowGuardAI/dso-data-type-generalizer/dtype"
)

var (
	ErrEmptyMap        = errors.New("type map is empty")
	ErrMalformedPair   = errors.New("type map pair is not in old:new form")
	ErrUnknownType     = errors.New("unsupported type name")
	ErrDuplicateSource = errors.New("duplicate source type")
)

// Map holds source -> target type conversions. Built once from the
// --type_map argument (or a YAML map file) and never mutated afterwards.
type Map map[dtype.Kind]dtype.Kind

// Parse parses the CLI form of a type map: comma-separated "old:new" pairs,
// e.g. "int:float" or "int:float,bool:str". Names are case-insensitive and
// may carry surrounding whitespace.
func Parse(s string) (Map, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyMap
	}

	m := make(Map)
	for _, pair := range strings.Split(s, ",") {
		oldName, newName, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPair, strings.TrimSpace(pair))
		}

		err := m.add(oldName, newName)
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Target returns the target kind for a source kind, if the map has one.
func (m Map) Target(src dtype.Kind) (dtype.Kind, bool) {
	dst, ok := m[src]
	return dst, ok
}

// Format serializes the map in canonical CLI form, sources ordered by kind.
// Parse(m.Format()) yields an equivalent map.
func (m Map) Format() string {
	parts := make([]string, 0, len(m))
	for src := dtype.KindInt; int(src) < dtype.KindTotal; src++ {
		if dst, ok := m[src]; ok {
			parts = append(parts, src.String()+":"+dst.String())
		}
	}

	return strings.Join(parts, ",")
}

func (m Map) add(oldName, newName string) error {
	src := dtype.FromName(oldName)
	if src == 0 {
		return unknownType(oldName)
	}

	dst := dtype.FromName(newName)
	if dst == 0 {
		return unknownType(newName)
	}

	if _, ok := m[src]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSource, src)
	}

	m[src] = dst

	return nil
}

func unknownType(name string) error {
	return fmt.Errorf("%w: %q (supported types are: %s)",
		ErrUnknownType, strings.TrimSpace(name), strings.Join(dtype.Names(), ", "))
}
