package model

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/newrelic/newrelic-labs-simevents/pkg/simevents/enums"
)

type present interface {
	Present() (any, bool)
}

type symbolic interface {
	Symbol() enums.Symbol
}

// Flatten turns a decoded value into scalar attributes. Embedded field groups
// land at the top level and named sub-structures are dotted. Absent optionals
// are left out. Codes become symbol names and 64-bit ids decimal strings, since
// attribute stores hold numbers as float64. Lists of scalars are comma joined;
// lists of structures are reported as a count.
func Flatten(v any) map[string]any {
	out := map[string]any{}
	if v == nil {
		return out
	}

	flatten("", reflect.ValueOf(v), out)
	return out
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func flatten(name string, rv reflect.Value, out map[string]any) {
	if !rv.IsValid() {
		return
	}

	if rv.CanInterface() {
		switch t := rv.Interface().(type) {
		case present:
			inner, ok := t.Present()
			if ok {
				flatten(name, reflect.ValueOf(inner), out)
			}
			return
		case symbolic:
			out[name] = t.Symbol().String()
			return
		}
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if !rv.IsNil() {
			flatten(name, rv.Elem(), out)
		}

	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i += 1 {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}

			if f.Anonymous {
				flatten(name, rv.Field(i), out)
				continue
			}
			flatten(join(name, f.Name), rv.Field(i), out)
		}

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			out[name] = fmt.Sprint(rv.Interface())
			return
		}

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)

		for _, k := range keys {
			flatten(join(name, k), rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())), out)
		}

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return
		}
		flattenList(name, rv, out)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		out[name] = strconv.FormatUint(rv.Uint(), 10)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out[name] = rv.Int()

	case reflect.Float32, reflect.Float64:
		out[name] = rv.Float()

	case reflect.Bool:
		out[name] = rv.Bool()

	case reflect.String:
		out[name] = rv.String()
	}
}

func flattenList(name string, rv reflect.Value, out map[string]any) {
	if rv.Type().Elem().Kind() == reflect.Struct {
		out[join(name, "count")] = rv.Len()
		return
	}

	items := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i += 1 {
		item := map[string]any{}
		flatten("v", rv.Index(i), item)

		if v, ok := item["v"]; ok {
			items = append(items, fmt.Sprint(v))
		}
	}

	out[name] = strings.Join(items, ",")
}
