// File: clone.go
// Title: Object Graph Cloner
// Description: Implements reflection-based deep cloning of arbitrary value
//              graphs with an optional field exclusion set and an optional
//              recursion depth guard. Structs are rebuilt from their zero
//              value field by field; slices and maps are cloned deeply
//              while arrays are copied shallowly.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-07
// Modified: 2025-03-07
//
// Change History:
// - 2025-03-07 v0.1.0: Initial implementation with type-dispatch recursion

package objectx

import (
	"reflect"

	"github.com/msto63/gox/core/errx"
	"github.com/msto63/gox/core/log"
)

// options holds the clone configuration assembled from Option values
type options struct {
	exclude  map[string]bool
	maxDepth int
}

// Option configures a clone operation
type Option func(*options)

// WithExclude skips struct fields with the given names during cloning.
// Excluded fields are left at their zero value in the clone. The exclusion
// set applies at every nesting depth, not just the top level; it has no
// effect on array, slice, or map elements.
func WithExclude(names ...string) Option {
	return func(o *options) {
		if o.exclude == nil {
			o.exclude = make(map[string]bool, len(names))
		}
		for _, name := range names {
			o.exclude[name] = true
		}
	}
}

// WithMaxDepth bounds the recursion depth of the clone. Descending beyond
// n levels fails with CodeRecursionLimit, which distinguishes "graph too
// deep or cyclic" from bad data. A value of 0 or less means unbounded.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// Clone produces a structurally independent deep copy of instance.
//
// Dispatch by kind:
//   - nil input returns nil without error
//   - arrays are copied shallowly: element references are shared
//   - slices are cloned deeply, element by element, preserving order
//   - strings, numbers, bools, and named primitive types copy by value
//   - structs are rebuilt from their zero value; unexported fields cannot
//     be set through reflection and remain at their zero value, as do
//     fields named in the exclusion set
//   - pointers and maps are followed and cloned deeply
//   - channels, functions, and unsafe pointers cannot be cloned and fail
//     with CodeUnsupportedType
//
// The clone performs no cycle detection: a cyclic graph does not terminate
// unless WithMaxDepth is set. The source value is never mutated, but must
// not be concurrently modified by another goroutine during the clone.
func Clone(instance interface{}, opts ...Option) (interface{}, error) {
	if instance == nil {
		return nil, nil
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cloned, err := cloneValue(reflect.ValueOf(instance), o, 0)
	if err != nil {
		return nil, err
	}
	return cloned.Interface(), nil
}

// CloneT is a type-safe wrapper around Clone for callers that know the
// static type of the value being cloned
func CloneT[T any](instance T, opts ...Option) (T, error) {
	var zero T

	cloned, err := Clone(instance, opts...)
	if err != nil {
		return zero, err
	}
	if cloned == nil {
		return zero, nil
	}
	return cloned.(T), nil
}

// cloneValue is the recursive worker behind Clone. depth counts the levels
// of reference/composite indirection descended so far.
func cloneValue(v reflect.Value, o *options, depth int) (reflect.Value, error) {
	if o.maxDepth > 0 && depth > o.maxDepth {
		log.Default().Named("objectx").Debug("recursion limit reached",
			log.Field("max_depth", o.maxDepth),
			log.Field("type", v.Type().String()))
		return reflect.Value{}, errx.Newf("clone exceeded maximum depth %d", o.maxDepth).
			WithCode(errx.CodeRecursionLimit).
			WithOperation("objectx.Clone").
			WithDetail("max_depth", o.maxDepth).
			WithDetail("type", v.Type().String())
	}

	switch v.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		// Value and string kinds copy by assignment; named enum-style
		// types fall in here as well
		return v, nil

	case reflect.Array:
		// Arrays clone shallowly: the array itself is duplicated but
		// element references stay shared, unlike the slice case below
		clone := reflect.New(v.Type()).Elem()
		clone.Set(v)
		return clone, nil

	case reflect.Slice:
		if v.IsNil() {
			return v, nil
		}
		clone := reflect.MakeSlice(v.Type(), 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := cloneValue(v.Index(i), o, depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			clone = reflect.Append(clone, elem)
		}
		return clone, nil

	case reflect.Map:
		if v.IsNil() {
			return v, nil
		}
		clone := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			value, err := cloneValue(iter.Value(), o, depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			clone.SetMapIndex(iter.Key(), value)
		}
		return clone, nil

	case reflect.Ptr:
		if v.IsNil() {
			return v, nil
		}
		clone := reflect.New(v.Type().Elem())
		pointee, err := cloneValue(v.Elem(), o, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		clone.Elem().Set(pointee)
		return clone, nil

	case reflect.Interface:
		if v.IsNil() {
			return v, nil
		}
		concrete, err := cloneValue(v.Elem(), o, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		clone := reflect.New(v.Type()).Elem()
		clone.Set(concrete)
		return clone, nil

	case reflect.Struct:
		// reflect.New yields the canonical zero value; no constructor or
		// initializer logic runs
		clone := reflect.New(v.Type()).Elem()
		t := v.Type()

		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)

			if o.exclude[field.Name] {
				continue
			}

			dst := clone.Field(i)
			if !dst.CanSet() {
				// Unexported fields cannot be written through reflection;
				// they stay at their zero value in the clone
				continue
			}

			value, err := cloneValue(v.Field(i), o, depth+1)
			if err != nil {
				return reflect.Value{}, err
			}
			dst.Set(value)
		}
		return clone, nil

	default:
		// Chan, Func, UnsafePointer, and anything else reflection cannot
		// reconstruct: fail fast rather than return a partial clone
		return reflect.Value{}, errx.Newf("cannot clone value of kind %s", v.Kind()).
			WithCode(errx.CodeUnsupportedType).
			WithOperation("objectx.Clone").
			WithDetail("kind", v.Kind().String()).
			WithDetail("type", v.Type().String())
	}
}
