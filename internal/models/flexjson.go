package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// fieldMaps caches JSON tag -> struct field index paths per type. Index
// paths rather than plain indexes so promoted fields of anonymous
// embedded structs resolve too.
var fieldMaps sync.Map // reflect.Type -> map[string][]int

func jsonFieldMap(t reflect.Type) map[string][]int {
	if m, ok := fieldMaps.Load(t); ok {
		return m.(map[string][]int)
	}
	m := make(map[string][]int, t.NumField())
	collectFields(t, nil, m)
	fieldMaps.Store(t, m)
	return m
}

func collectFields(t reflect.Type, prefix []int, m map[string][]int) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		idx := append(append([]int{}, prefix...), i)
		tag := f.Tag.Get("json")
		if f.Anonymous && tag == "" && f.Type.Kind() == reflect.Struct {
			collectFields(f.Type, idx, m)
			continue
		}
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if _, taken := m[name]; !taken {
			m[name] = idx
		}
	}
}

// flexUnmarshal decodes JSON field by field, coercing string-encoded numbers
// and booleans into the struct's native types. The AQT backend serializes
// 64-bit ids as JSON numbers beyond float53 precision and some historical
// rows carry numeric fields as quoted strings or null; a plain
// json.Unmarshal rejects those rows outright. Absent and null fields are
// left at their zero values, which are the documented defaults.
func flexUnmarshal(data []byte, out any) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	v := reflect.ValueOf(out).Elem()
	fields := jsonFieldMap(v.Type())

	for key, rawVal := range raw {
		idx, ok := fields[key]
		if !ok {
			continue
		}
		fv := v.FieldByIndex(idx)
		if !fv.CanSet() {
			continue
		}
		if string(rawVal) == "null" {
			continue
		}

		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		if len(rawVal) > 1 && rawVal[0] == '"' {
			var s string
			if err := json.Unmarshal(rawVal, &s); err != nil {
				continue
			}
			if s == "" {
				continue
			}
			coerceStringToField(fv, s)
		}
	}

	return nil
}

// coerceStringToField converts a string value to the field's native type.
func coerceStringToField(fv reflect.Value, s string) {
	switch fv.Kind() {
	case reflect.Float32, reflect.Float64:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetFloat(n)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			fv.SetInt(n)
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			// "4125.0" -> truncate to int
			fv.SetInt(int64(f))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, err := strconv.ParseFloat(s, 64); err == nil && n >= 0 {
			fv.SetUint(uint64(n))
		}
	case reflect.Bool:
		if b, err := strconv.ParseBool(s); err == nil {
			fv.SetBool(b)
		}
	case reflect.String:
		fv.SetString(s)
	}
}
