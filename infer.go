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

package jstype

import (
	"encoding/json"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

type undefined struct{}

// Undefined marks the absence of a value. It is inferred as TypeUndefined.
var Undefined any = undefined{}

// Future is implemented by promise-like values, e.g. context.Context. Such
// values and channels are inferred as TypePromise.
type Future interface {
	Done() <-chan struct{}
}

const rootLabel = "value"

// Infer computes the structural type of v and simplifies the result with
// the aliases from cfg. A nil cfg uses the defaults. Infer terminates for
// cyclic values: a container that is found again on the path from the root
// to itself is described by a Scalar that names its kind and the path to
// its first occurrence, e.g. "Object[value, children, 0]".
func Infer(cfg *Config, v any) Type {
	if cfg == nil {
		cfg = &defaultConfig
	}
	inf := inferrer{cfg: cfg, tag: cfg.tagKey()}
	t := inf.value(reflect.ValueOf(v), rootLabel, nil)
	return Simplify(t, cfg.Aliases)
}

type inferrer struct {
	cfg *Config
	tag string
}

// identity of a container. Containers that are not referenced (value
// arrays and structs) have the zero identity unless they were reached
// through a pointer. The type distinguishes containers that share an
// address, e.g. a struct and its first field.
type identity struct {
	kind reflect.Kind
	typ  reflect.Type
	ptr  uintptr
	len  int
}

// frame is an entry of the ancestor path: a container that is being
// inferred and the label under which it was found.
type frame struct {
	id    identity
	label string
}

func (inf *inferrer) value(v reflect.Value, label string, path []frame) Type {
	var ptrID identity
	for {
		if !v.IsValid() || isNil(v) {
			return TypeNull
		}
		if t := special(v); t != "" {
			return t
		}
		switch v.Kind() {
		case reflect.Interface:
			v = v.Elem()
			continue
		case reflect.Pointer:
			ptrID = identity{
				kind: reflect.Pointer,
				typ:  v.Type().Elem(),
				ptr:  v.Pointer(),
			}
			v = v.Elem()
			continue
		}
		break
	}
	switch v.Kind() {
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.String:
		return TypeString
	case reflect.Func:
		return FunctionType(arity(v.Type()))
	case reflect.Slice:
		id := identity{
			kind: reflect.Slice,
			typ:  v.Type(),
			ptr:  v.Pointer(),
			len:  v.Len(),
		}
		return inf.list(v, label, path, id)
	case reflect.Array:
		return inf.list(v, label, path, ptrID)
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return TypeMap
		}
		id := identity{kind: reflect.Map, typ: v.Type(), ptr: v.Pointer()}
		return inf.mapRecord(v, label, path, id)
	case reflect.Struct:
		return inf.structRecord(v, label, path, ptrID)
	}
	return Scalar(v.Type().String())
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// special detects values that are identified by their Go type or their
// behaviour rather than their structure.
func special(v reflect.Value) Scalar {
	if v.Kind() == reflect.Chan {
		return TypePromise
	}
	if !v.CanInterface() {
		return ""
	}
	switch v.Interface().(type) {
	case undefined:
		return TypeUndefined
	case time.Time:
		return TypeDate
	case *regexp.Regexp:
		return TypeRegExp
	case json.Number:
		return TypeNumber
	case Future:
		return TypePromise
	case error:
		return TypeError
	}
	return ""
}

// arity is the declared number of parameters of a function type, not
// counting a final variadic parameter.
func arity(ft reflect.Type) int {
	n := ft.NumIn()
	if ft.IsVariadic() {
		n--
	}
	return n
}

// enter checks v against the ancestor path. If v is already on the path it
// returns the cycle scalar. Otherwise it returns the path for v's
// elements.
func (inf *inferrer) enter(id identity, kind, label string, path []frame) (Scalar, []frame) {
	if id.ptr != 0 {
		for i, f := range path {
			if f.id == id {
				return cycleScalar(kind, path[:i+1]), nil
			}
		}
	}
	if inf.cfg.deeper(len(path)) {
		return TypeAny, nil
	}
	return "", append(path, frame{id: id, label: label})
}

func cycleScalar(kind string, path []frame) Scalar {
	var sb strings.Builder
	sb.WriteString(kind)
	sb.WriteByte('[')
	for i, f := range path {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.label)
	}
	sb.WriteByte(']')
	return Scalar(sb.String())
}

func (inf *inferrer) list(v reflect.Value, label string, path []frame, id identity) Type {
	n := v.Len()
	if n == 0 {
		return List{}
	}
	s, path := inf.enter(id, "Array", label, path)
	if s != "" {
		return s
	}
	ts := make([]Type, 0, n)
	for i := range n {
		t := inf.value(v.Index(i), strconv.Itoa(i), path)
		if !contains(ts, t) {
			ts = append(ts, t)
		}
	}
	return List(Minimize(ts))
}

func (inf *inferrer) mapRecord(v reflect.Value, label string, path []frame, id identity) Type {
	s, path := inf.enter(id, "Object", label, path)
	if s != "" {
		return s
	}
	keys := v.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return strings.Compare(a.String(), b.String())
	})
	res := make(Record, 0, len(keys))
	for _, k := range keys {
		name := k.String()
		res = append(res, Field{
			Name: name,
			Type: inf.value(v.MapIndex(k), name, path),
		})
	}
	return res
}

func (inf *inferrer) structRecord(v reflect.Value, label string, path []frame, id identity) Type {
	s, path := inf.enter(id, "Object", label, path)
	if s != "" {
		return s
	}
	st := v.Type()
	res := make(Record, 0, st.NumField())
	for i := range st.NumField() {
		sf := st.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := inf.fieldName(sf)
		if name == "" || res.index(name) >= 0 {
			continue
		}
		res = append(res, Field{
			Name: name,
			Type: inf.value(v.Field(i), name, path),
		})
	}
	return res
}

func (inf *inferrer) fieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get(inf.tag)
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return sf.Name
}
