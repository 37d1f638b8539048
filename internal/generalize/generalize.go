// Package generalize coerces dataset columns from specific types to more
// general ones, driven by a user-supplied type map.
//
// Coercion is column-at-a-time and in place: a column whose inferred kind
// appears as a source in the map has every cell rewritten in the target
// kind's lexical form and is then retyped. Columns outside the map are left
// untouched. The first cell that cannot be represented in the target type
// aborts the whole run; no partially converted dataset is ever reported as
// success.
package generalize

import (
	"fmt"
	"log"

	"github.com/ShadowGuardAI/dso-data-type-generalizer/internal/frame"
	"github.com/ShadowGuardAI/dso-data-type-generalizer/internal/typemap"
)

// Apply converts every column of f whose kind is a source in m to the
// mapped target kind. One info line is logged per converted column.
func Apply(f *frame.Frame, m typemap.Map) error {
	for i := range f.Columns {
		col := &f.Columns[i]

		dst, ok := m.Target(col.Kind)
		if !ok {
			continue
		}

		conv := convertor(col.Kind, dst)
		if conv == nil {
			// identity pair, retype only
			col.Kind = dst
			continue
		}

		for r, cell := range col.Cells {
			out, err := conv(cell)
			if err != nil {
				return fmt.Errorf("failed to convert column %q from %s to %s at row %d: %w",
					col.Name, col.Kind, dst, r+1, err)
			}

			col.Cells[r] = out
		}

		log.Printf("converted column %q from %s to %s", col.Name, col.Kind, dst)
		col.Kind = dst
	}

	return nil
}
