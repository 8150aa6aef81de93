// Package tagopts defines the option maps consumed by the tag builders plus
// the merge, coercion, and boolean-attribute rules shared between them.
// Values are limited to a small domain: strings, bools, ints, and string
// lists. Merging is an explicit ordered operation with defined precedence;
// caller-supplied maps are never mutated by the helpers that copy.
package tagopts

import (
	"fmt"
	"strconv"
)

// Options maps attribute names to values. Keys are unique; later merge
// layers override earlier ones.
type Options map[string]any

// Clone returns a shallow copy of the option map. A nil receiver yields nil.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for key, value := range o {
		out[key] = value
	}
	return out
}

// Merge layers overrides on top of defaults and returns a fresh map. Neither
// input is mutated; overrides win on key collisions.
func Merge(defaults, overrides Options) Options {
	out := make(Options, len(defaults)+len(overrides))
	for key, value := range defaults {
		out[key] = value
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

// Pop removes key from the map and returns its value. The second return
// reports whether the key was present.
func (o Options) Pop(key string) (any, bool) {
	value, ok := o[key]
	if ok {
		delete(o, key)
	}
	return value, ok
}

// PopString pops key and coerces the value to a string via ValueString.
func (o Options) PopString(key string) (string, bool) {
	value, ok := o.Pop(key)
	if !ok {
		return "", false
	}
	return ValueString(value), true
}

// PopBool pops key and reports its truthiness, falling back when absent.
func (o Options) PopBool(key string, fallback bool) bool {
	value, ok := o.Pop(key)
	if !ok {
		return fallback
	}
	return Truthy(value)
}

// Truthy reports whether an option value counts as set. nil, false, the
// empty string, and zero integers are falsy; everything else is truthy.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}

// ValueString renders an option value as an attribute string.
func ValueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// StringList normalises a scalar or list value into a string slice. Scalars
// become single-element lists so membership tests always run against a list.
func StringList(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, ValueString(item))
		}
		return out
	default:
		return []string{ValueString(v)}
	}
}

// Int coerces an option value to an int when possible.
func Int(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
