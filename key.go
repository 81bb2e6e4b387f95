package memoize

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Delimiter separates the textual forms of arguments within a cache key.
const Delimiter = ","

// Key derives the cache key for a call with the given arguments.
//
// Arguments are compared only by their textual form, so Key(1, 2, 3) and
// Key("1", 2, 3) are the same key. A call without arguments has the key "".
func Key(args ...any) string {
	return joinKeys(args, 0)
}

// maxKeyDepth bounds how deep lists and pointers are followed; anything
// nested deeper, such as a pointer cycle, is formatted as "".
const maxKeyDepth = 32

func joinKeys(args []any, depth int) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		return keyOf(args[0], depth)
	}
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(Delimiter)
		}
		sb.WriteString(keyOf(arg, depth))
	}
	return sb.String()
}

// KeyOf returns the canonical textual form of a single argument.
//
// Lists are flattened into their comma-joined elements, except lists of
// bytes which are read as strings. Pointers are followed.
func KeyOf(arg any) string {
	return keyOf(arg, 0)
}

func keyOf(arg any, depth int) string {
	switch v := arg.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case uintptr:
		return strconv.FormatUint(uint64(v), 10)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	return reflectKeyOf(reflect.ValueOf(arg), depth)
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

// reflectKeyOf handles named basic types, lists and pointers.
func reflectKeyOf(v reflect.Value, depth int) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return formatFloat(v.Float(), 32)
	case reflect.Float64:
		return formatFloat(v.Float(), 64)
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return ""
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			for i := range b {
				b[i] = byte(v.Index(i).Uint())
			}
			return string(b)
		}
		if depth >= maxKeyDepth {
			return ""
		}
		parts := make([]any, v.Len())
		for i := range parts {
			parts[i] = v.Index(i).Interface()
		}
		return joinKeys(parts, depth+1)
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() || depth >= maxKeyDepth {
			return ""
		}
		return keyOf(v.Elem().Interface(), depth+1)
	}
	return fmt.Sprint(v.Interface())
}
