package collections

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/adobaai/underbar/strz"
)

// Field returns the value stored under key in obj.
//
// For structs (or pointers to structs) key is matched against, in order:
// the exported field name, the camel-cased key ("first_name" → FirstName),
// the json tag, and the snake-cased field name.
// For maps with string keys it is the map entry.
// ok is false when nothing matches.
func Field(obj any, key string) (v any, ok bool) {
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		f, ok := lookupField(rv.Type(), key)
		if !ok {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	}
	return nil, false
}

func lookupField(t reflect.Type, key string) (reflect.StructField, bool) {
	if f, ok := t.FieldByName(key); ok && f.IsExported() {
		return f, true
	}
	if f, ok := t.FieldByName(strz.Camelize(key)); ok && f.IsExported() {
		return f, true
	}
	fields := reflect.VisibleFields(t)
	i := IndexOf(Map(fields, func(f reflect.StructField) bool {
		if !f.IsExported() || f.Anonymous {
			return false
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name == key || name == "" && strz.Underscore(f.Name) == key
	}), true)
	if i < 0 {
		return reflect.StructField{}, false
	}
	return fields[i], true
}

// compareAny orders two field values for [SortByField].
// nil sorts after everything else.
func compareAny(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	ka, kb := kindClass(ra.Kind()), kindClass(rb.Kind())
	switch {
	case ka == reflect.String && kb == reflect.String:
		return cmp.Compare(ra.String(), rb.String())
	case ka == reflect.Int && kb == reflect.Int:
		return cmp.Compare(ra.Int(), rb.Int())
	case ka == reflect.Uint && kb == reflect.Uint:
		return cmp.Compare(ra.Uint(), rb.Uint())
	case ka == reflect.Bool && kb == reflect.Bool:
		return cmp.Compare(boolInt(ra.Bool()), boolInt(rb.Bool()))
	case isNumber(ka) && isNumber(kb):
		return cmp.Compare(toFloat(ra), toFloat(rb))
	}
	panic(fmt.Sprintf("collections: cannot compare %T with %T", a, b))
}

func kindClass(k reflect.Kind) reflect.Kind {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflect.Int
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflect.Uint
	case reflect.Float32, reflect.Float64:
		return reflect.Float64
	}
	return k
}

func isNumber(k reflect.Kind) bool {
	return k == reflect.Int || k == reflect.Uint || k == reflect.Float64
}

func toFloat(v reflect.Value) float64 {
	switch kindClass(v.Kind()) {
	case reflect.Int:
		return float64(v.Int())
	case reflect.Uint:
		return float64(v.Uint())
	}
	return v.Float()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
