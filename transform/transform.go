package transform

import (
	"reflect"
	"strings"
)

// TrimSpace runs [strings.TrimSpace] on every string reachable from v.
func TrimSpace(v any) {
	Strings(v, strings.TrimSpace)
}

// ToLower runs [strings.ToLower] on every string reachable from v.
func ToLower(v any) {
	Strings(v, strings.ToLower)
}

// Strings applies f to every string reachable from v through exported
// struct fields, pointers, slices, arrays and map values. v must be a
// pointer; interface fields are left alone.
func Strings(v any, f func(string) string) {
	walk(reflect.ValueOf(v), f)
}

// Chain runs fns on v in order.
func Chain(v any, fns ...func(any)) {
	for _, fn := range fns {
		fn(v)
	}
}

func walk(v reflect.Value, f func(string) string) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			walk(v.Elem(), f)
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(f(v.String()))
		}
	case reflect.Struct:
		t := v.Type()
		for i := range v.NumField() {
			if t.Field(i).IsExported() {
				walk(v.Field(i), f)
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			walk(v.Index(i), f)
		}
	case reflect.Map:
		if !v.CanSet() {
			return
		}
		// Map values are not addressable: rewrite a copy and store it back.
		iter := v.MapRange()
		for iter.Next() {
			cp := reflect.New(v.Type().Elem()).Elem()
			cp.Set(iter.Value())
			walk(cp, f)
			v.SetMapIndex(iter.Key(), cp)
		}
	}
}
