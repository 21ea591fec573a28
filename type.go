/*
A library to infer structural types from example values.
Copyright (C) 2025  Marcus Perlick

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package jstype infers structural type descriptions from example values
// and provides an algebra over them: equivalence, a total order and a join
// that computes the least general type of two descriptions.
package jstype

import (
	"errors"

	"git.fractalqb.de/fractalqb/eloc"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies the variant of a Type. Kinds are ordered by their rank in
// the total order of types: Empty < Scalar < List < Record < OneOf.
type Kind int

const (
	InvalidKind Kind = iota // Invalid

	EmptyKind  // Empty
	ScalarKind // Scalar
	ListKind   // List
	RecordKind // Record
	OneOfKind  // OneOf
)

// Type is a structural type description. It is implemented by exactly the
// five variants Empty, Scalar, List, Record and OneOf. Types are immutable
// values; no operation of this package modifies its arguments.
type Type interface {
	Kind() Kind
	isType()
}

var ErrInvalidType = errors.New("invalid type description")

func invalidType(t Type) error {
	if t == nil {
		return eloc.Errorf("%w: nil", ErrInvalidType)
	}
	if o, ok := t.(OneOf); ok {
		return eloc.Errorf("%w: union with %d variants", ErrInvalidType, len(o))
	}
	return eloc.Errorf("%w: %T", ErrInvalidType, t)
}

// KindOf returns the kind of t. It panics with an error wrapping
// ErrInvalidType if t is not one of the five variants.
func KindOf(t Type) Kind {
	switch t := t.(type) {
	case Empty:
		return EmptyKind
	case Scalar:
		return ScalarKind
	case List:
		return ListKind
	case Record:
		return RecordKind
	case OneOf:
		if len(t) >= 2 {
			return OneOfKind
		}
	}
	panic(invalidType(t))
}

func IsEmpty(t Type) bool {
	_, ok := t.(Empty)
	return ok
}

func IsScalar(t Type) bool {
	_, ok := t.(Scalar)
	return ok
}

func IsList(t Type) bool {
	_, ok := t.(List)
	return ok
}

func IsRecord(t Type) bool {
	_, ok := t.(Record)
	return ok
}

// IsOneOf reports whether t is a union. Unions with less than two variants
// are malformed and not recognised as OneOf.
func IsOneOf(t Type) bool {
	o, ok := t.(OneOf)
	return ok && len(o) >= 2
}

// Check validates that t and all its nested types are well formed.
func Check(t Type) error {
	switch t := t.(type) {
	case Empty, Scalar:
		return nil
	case List:
		for i, m := range t {
			if m == nil || IsEmpty(m) {
				return eloc.Errorf("%w: list member %d is %T", ErrInvalidType, i, m)
			}
			if err := Check(m); err != nil {
				return err
			}
		}
		return nil
	case Record:
		seen := make(map[string]bool, len(t))
		for _, f := range t {
			if seen[f.Name] {
				return eloc.Errorf("%w: duplicate record key %q", ErrInvalidType, f.Name)
			}
			seen[f.Name] = true
			if err := Check(f.Type); err != nil {
				return eloc.Errorf("key %q: %w", f.Name, err)
			}
		}
		return nil
	case OneOf:
		if len(t) < 2 {
			return invalidType(t)
		}
		for i, v := range t {
			if v == nil || IsEmpty(v) {
				return eloc.Errorf("%w: union variant %d is %T", ErrInvalidType, i, v)
			}
			if err := Check(v); err != nil {
				return err
			}
			for _, w := range t[:i] {
				if Equal(v, w) {
					return eloc.Errorf("%w: duplicate union variant %d", ErrInvalidType, i)
				}
			}
		}
		return nil
	}
	return invalidType(t)
}
