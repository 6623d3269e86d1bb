// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Stack is an ordered collection of P named, equal-shaped activity fields.
// Component i of every tensor built from a Stack corresponds to Names()[i].
type Stack struct {
	names  []string
	fields []*Field
	ny, nx int
}

// NewStack validates fields against the ordered name list and returns a Stack.
// Stage 1 (Validate names): non-empty, no duplicates, every name present.
// Stage 2 (Validate shapes): every field matches the first field's shape.
// Stage 3 (Validate values): every value is finite.
// Fields are referenced, not copied; engines never mutate them.
//
// Errors: ErrEmptyNames, ErrDuplicateName, ErrUnknownName, ErrShapeMismatch,
// ErrNonFinite, each wrapped with the offending name.
// Complexity: O(P*ny*nx) for the finiteness scan.
func NewStack(fields map[string]*Field, names []string) (*Stack, error) {
	if len(names) == 0 {
		return nil, ErrEmptyNames
	}
	seen := make(map[string]struct{}, len(names))
	st := &Stack{
		names:  make([]string, len(names)),
		fields: make([]*Field, len(names)),
	}
	copy(st.names, names)

	for i, name := range names {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("NewStack: %q: %w", name, ErrDuplicateName)
		}
		seen[name] = struct{}{}

		f, ok := fields[name]
		if !ok || f == nil {
			return nil, fmt.Errorf("NewStack: %q: %w", name, ErrUnknownName)
		}
		if i == 0 {
			st.ny, st.nx = f.Shape()
		} else if f.ny != st.ny || f.nx != st.nx {
			return nil, fmt.Errorf("NewStack: field %q has shape %dx%d, field %q has %dx%d: %w",
				name, f.ny, f.nx, names[0], st.ny, st.nx, ErrShapeMismatch)
		}
		if err := f.CheckFinite(); err != nil {
			return nil, fmt.Errorf("NewStack: %q: %w", name, err)
		}
		st.fields[i] = f
	}

	return st, nil
}

// Len returns P, the number of fields.
func (s *Stack) Len() int { return len(s.fields) }

// Shape returns the shared (ny, nx).
func (s *Stack) Shape() (ny, nx int) { return s.ny, s.nx }

// Names returns a copy of the ordered name list.
func (s *Stack) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Field returns the i-th field in name order.
func (s *Stack) Field(i int) *Field { return s.fields[i] }

// Lookup returns the field registered under name.
func (s *Stack) Lookup(name string) (*Field, bool) {
	for i, n := range s.names {
		if n == name {
			return s.fields[i], true
		}
	}

	return nil, false
}
