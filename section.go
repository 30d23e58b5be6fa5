// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ini

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Section is a named group of key value pairs. Keys are case sensitive
// and values are always stored as raw text. Typed accessors convert on read.
type Section struct {
	name   string
	keys   []string
	values map[string]string
}

func newSection(name string) *Section {
	return &Section{
		name:   name,
		values: make(map[string]string),
	}
}

// Name returns the section name as it appears between the brackets.
func (s *Section) Name() string {
	return s.name
}

// Len returns the number of keys.
func (s *Section) Len() int {
	return len(s.keys)
}

// Keys returns the keys in the order they were first assigned.
func (s *Section) Keys() []string {
	return slices.Clone(s.keys)
}

// All iterates over every key value pair in the order keys were first assigned.
func (s *Section) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}

// Has reports whether key is set.
func (s *Section) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Remove deletes key from the section.
func (s *Section) Remove(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })
}

// Get returns the raw value stored for key.
func (s *Section) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetBool returns true if the stored value is exactly "1".
// Every other value, including a missing key, yields def.
func (s *Section) GetBool(key string, def bool) bool {
	if v, ok := s.values[key]; ok && v == "1" {
		return true
	}
	return def
}

// BoolRequired is the strict variant of [Section.GetBool]. It fails
// with [ErrMissingKey] if key is not set, otherwise reports whether
// the value is "1".
func (s *Section) BoolRequired(key string) (bool, error) {
	v, ok := s.values[key]
	if !ok {
		return false, missingKey(s, key)
	}
	return v == "1", nil
}

// GetBoolFlexible understands "1", "true", "yes" and "y" in any case as
// true and everything else as false. ok is false if key is not set.
func (s *Section) GetBoolFlexible(key string) (value bool, ok bool) {
	v, ok := s.values[key]
	if !ok {
		return false, false
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y":
		return true, true
	}
	return false, true
}

// GetStrings splits the value on ',' and returns the trimmed,
// non-empty parts. A missing key yields an empty slice.
func (s *Section) GetStrings(key string) []string {
	v, ok := s.values[key]
	if !ok {
		return []string{}
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// GetVector3 reads three comma separated numbers. Components which
// can not be parsed are 0. If the value does not have exactly three
// components the zero vector is returned.
func (s *Section) GetVector3(key string) [3]float64 {
	var vec [3]float64
	parts := s.GetStrings(key)
	if len(parts) != len(vec) {
		return vec
	}
	for i, p := range parts {
		f, ok := parseDouble(p)
		if !ok {
			continue
		}
		vec[i] = f
	}
	return vec
}

// GetDouble flexibly parses the value as a float64, returning def
// if the key is missing or the value can not be parsed.
func (s *Section) GetDouble(key string, def float64) float64 {
	return getOr(s, key, def, parseDouble)
}

// Double is the strict variant of [Section.GetDouble].
func (s *Section) Double(key string) (float64, error) {
	return require(s, key, parseDouble)
}

// GetInt flexibly parses the value as an int, returning def
// if the key is missing or the value can not be parsed.
func (s *Section) GetInt(key string, def int) int {
	return getOr(s, key, def, parseInt)
}

// Int is the strict variant of [Section.GetInt].
func (s *Section) Int(key string) (int, error) {
	return require(s, key, parseInt)
}

// GetLong flexibly parses the value as an int64, returning def
// if the key is missing or the value can not be parsed.
func (s *Section) GetLong(key string, def int64) int64 {
	return getOr(s, key, def, parseLong)
}

// Long is the strict variant of [Section.GetLong].
func (s *Section) Long(key string) (int64, error) {
	return require(s, key, parseLong)
}

// Set stores value under key, replacing any previous value.
func (s *Section) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// SetIdentifier stores the lower cased value under key.
func (s *Section) SetIdentifier(key, value string) {
	s.Set(key, strings.ToLower(value))
}

// SetInt stores n in base 10.
func (s *Section) SetInt(key string, n int64) {
	s.Set(key, strconv.FormatInt(n, 10))
}

// SetDouble stores f using the shortest decimal representation
// which parses back to the same value.
func (s *Section) SetDouble(key string, f float64) {
	s.Set(key, strconv.FormatFloat(f, 'f', -1, 64))
}

// SetDoubleFormat stores f formatted with the given strconv format
// and precision, e.g. SetDoubleFormat("SCALE", 1.5, 'f', 2) stores "1.50".
func (s *Section) SetDoubleFormat(key string, f float64, fmt byte, prec int) {
	s.Set(key, strconv.FormatFloat(f, fmt, prec, 64))
}

// SetBool stores b as "1" or "0".
func (s *Section) SetBool(key string, b bool) {
	if b {
		s.Set(key, "1")
		return
	}
	s.Set(key, "0")
}

// lookup is the single retrieval path shared by the defaulting
// and the strict accessors.
func lookup[T any](s *Section, key string, parse func(string) (T, bool)) (v T, present bool, ok bool) {
	raw, present := s.values[key]
	if !present {
		return v, false, false
	}
	v, ok = parse(raw)
	return v, true, ok
}

func getOr[T any](s *Section, key string, def T, parse func(string) (T, bool)) T {
	v, _, ok := lookup(s, key, parse)
	if !ok {
		return def
	}
	return v
}

func require[T any](s *Section, key string, parse func(string) (T, bool)) (T, error) {
	v, present, ok := lookup(s, key, parse)
	if !present {
		return v, missingKey(s, key)
	}
	if !ok {
		return v, unparsableValue(s, key, s.values[key], ErrUnparsableValue)
	}
	return v, nil
}
