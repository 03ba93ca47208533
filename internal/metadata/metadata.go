// Package metadata holds the declared named types, header range, and
// data range parsed out of an SDL document, and enforces the
// consistency invariants between them.
package metadata

import (
	"fmt"

	"sdlrecon/internal/celltype"
	"sdlrecon/internal/ref"
)

// DuplicateKeyError reports a second declare-type for an existing name.
type DuplicateKeyError struct {
	Name     string
	Existing celltype.Tag
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q (already declared as %s)", e.Name, e.Existing)
}

// Kind identifies the error category for diagnostics and logging.
func (e *DuplicateKeyError) Kind() string { return "DuplicateKey" }

// AlreadyDeclaredError reports a second declare-header or declare-data.
type AlreadyDeclaredError struct {
	Field string
}

func (e *AlreadyDeclaredError) Error() string {
	return fmt.Sprintf("%s already declared", e.Field)
}

// Kind identifies the error category for diagnostics and logging.
func (e *AlreadyDeclaredError) Kind() string { return "AlreadyDeclared" }

// HeaderNotOneDimError reports a 2D declare-header range.
type HeaderNotOneDimError struct {
	Header ref.Range
}

func (e *HeaderNotOneDimError) Error() string {
	return fmt.Sprintf("header range %s is not one-dimensional", e.Header)
}

// Kind identifies the error category for diagnostics and logging.
func (e *HeaderNotOneDimError) Kind() string { return "HeaderNotOneDim" }

// ShapeMismatchError reports header/data shape incompatibility.
type ShapeMismatchError struct {
	Header ref.Range
	Data   ref.Range
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: header %s is not compatible with data %s", e.Header, e.Data)
}

// Kind identifies the error category for diagnostics and logging.
func (e *ShapeMismatchError) Kind() string { return "ShapeMismatch" }

// MissingRangeError reports validate() called before header or data
// was declared.
type MissingRangeError struct {
	Field string
}

func (e *MissingRangeError) Error() string {
	return fmt.Sprintf("%s was never declared", e.Field)
}

// Kind identifies the error category for diagnostics and logging.
func (e *MissingRangeError) Kind() string { return "MissingRange" }

// Key is one declared (name, type) pair, in declaration order.
type Key struct {
	Name string
	Type celltype.Tag
}

// State is the mutable builder that accumulates directives as the SDL
// parser applies them. Keys are kept in declaration order as well as
// by name, since extraction needs to report unused keys and the
// diagnostics read better in source order.
type State struct {
	order  []string
	keys   map[string]celltype.Tag
	header *ref.Range
	data   *ref.Range
}

// New returns an empty metadata builder.
func New() *State {
	return &State{keys: make(map[string]celltype.Tag)}
}

// DeclareType records a declare-type directive. name must be a
// non-empty identifier; redeclaring an existing name is an error.
func (s *State) DeclareType(name string, tag celltype.Tag) error {
	if name == "" {
		return fmt.Errorf("declare-type: name must not be empty")
	}
	if existing, ok := s.keys[name]; ok {
		return &DuplicateKeyError{Name: name, Existing: existing}
	}
	s.keys[name] = tag
	s.order = append(s.order, name)
	return nil
}

// DeclareHeader records a declare-header directive. A second call
// fails with AlreadyDeclaredError; a 2D range fails with
// HeaderNotOneDimError.
func (s *State) DeclareHeader(r ref.Range) error {
	if s.header != nil {
		return &AlreadyDeclaredError{Field: "header"}
	}
	if !r.IsOneDimensional() {
		return &HeaderNotOneDimError{Header: r}
	}
	s.header = &r
	return nil
}

// DeclareData records a declare-data directive. A second call fails
// with AlreadyDeclaredError.
func (s *State) DeclareData(r ref.Range) error {
	if s.data != nil {
		return &AlreadyDeclaredError{Field: "data"}
	}
	s.data = &r
	return nil
}

// Frozen is the immutable, validated view of a State, safe to share
// read-only across multiple concurrent Instances.
type Frozen struct {
	Order  []string
	Keys   map[string]celltype.Tag
	Header ref.Range
	Data   ref.Range
}

// Validate checks presence of header and data and the header/data
// shape-compatibility invariant, then returns a frozen, immutable view.
func (s *State) Validate() (*Frozen, error) {
	if s.header == nil {
		return nil, &MissingRangeError{Field: "header"}
	}
	if s.data == nil {
		return nil, &MissingRangeError{Field: "data"}
	}

	header, data := *s.header, *s.data

	if header.Height == 1 {
		if data.Width != header.Width {
			return nil, &ShapeMismatchError{Header: header, Data: data}
		}
	} else { // header.Width == 1, enforced by DeclareHeader
		if data.Height != header.Height {
			return nil, &ShapeMismatchError{Header: header, Data: data}
		}
	}

	order := make([]string, len(s.order))
	copy(order, s.order)
	keys := make(map[string]celltype.Tag, len(s.keys))
	for k, v := range s.keys {
		keys[k] = v
	}

	return &Frozen{Order: order, Keys: keys, Header: header, Data: data}, nil
}

// UnusedKeys returns a fresh set containing every declared key name,
// for an Instance to narrow down as it walks a header.
func (f *Frozen) UnusedKeys() map[string]bool {
	set := make(map[string]bool, len(f.Order))
	for _, name := range f.Order {
		set[name] = true
	}
	return set
}
