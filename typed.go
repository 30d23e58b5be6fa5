// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ini

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
)

// EnumNames maps the variant names of an enum type to their values.
type EnumNames[T constraints.Integer] map[string]T

// GetEnum matches the stored value against names ignoring case and
// returns def if the key is missing or nothing matches.
func GetEnum[T constraints.Integer](s *Section, key string, def T, names EnumNames[T]) T {
	return GetEnumCase(s, key, def, names, true)
}

// GetEnumCase is [GetEnum] with configurable case sensitivity.
func GetEnumCase[T constraints.Integer](s *Section, key string, def T, names EnumNames[T], ignoreCase bool) T {
	return getOr(s, key, def, func(v string) (T, bool) {
		return matchEnum(v, names, ignoreCase)
	})
}

// Enum is the strict variant of [GetEnum]. It fails with [ErrMissingKey]
// if key is not set and with [ErrInvalidEnumValue] if the value does not
// match any variant.
func Enum[T constraints.Integer](s *Section, key string, names EnumNames[T]) (T, error) {
	v, present, ok := lookup(s, key, func(v string) (T, bool) {
		return matchEnum(v, names, true)
	})
	if !present {
		return v, missingKey(s, key)
	}
	if !ok {
		return v, unparsableValue(s, key, s.values[key], ErrInvalidEnumValue)
	}
	return v, nil
}

// matchEnum accepts a variant name or the numeric value of a variant,
// since [SetEnum] stores enums by value.
func matchEnum[T constraints.Integer](v string, names EnumNames[T], ignoreCase bool) (T, bool) {
	v = strings.TrimSpace(v)
	if e, ok := names[v]; ok {
		return e, true
	}
	if ignoreCase {
		for name, e := range names {
			if strings.EqualFold(name, v) {
				return e, true
			}
		}
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	for _, e := range names {
		if int64(e) == n {
			return e, true
		}
	}
	return 0, false
}

// SetEnum stores the numeric value of e.
func SetEnum[T constraints.Integer](s *Section, key string, e T) {
	s.Set(key, formatInteger(e))
}

// SetSlice joins the elements of vs with ',' and stores the result.
// A nil slice leaves the key untouched.
func SetSlice[T any](s *Section, key string, vs []T) {
	if vs == nil {
		return
	}
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = formatValue(v)
	}
	s.Set(key, strings.Join(ss, ","))
}

// Scalar lists the value types accepted by [SetOptional].
type Scalar interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// SetOptional stores *v using the same encoding as the typed setters.
// A nil pointer leaves the key untouched rather than clearing it.
func SetOptional[T Scalar](s *Section, key string, v *T) {
	if v == nil {
		return
	}
	switch x := any(*v).(type) {
	case string:
		s.Set(key, x)
	case bool:
		s.SetBool(key, x)
	case float64:
		s.SetDouble(key, x)
	default:
		s.Set(key, formatValue(x))
	}
}

func formatInteger[T constraints.Integer](n T) string {
	if n < 0 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatUint(uint64(n), 10)
}

// formatValue converts v to text independent of the current locale.
func formatValue(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
