// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ini

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is returned by the strict accessors when
	// the requested key is not present in the section.
	ErrMissingKey = errors.New("ini: missing key")

	// ErrUnparsableValue is returned by the strict accessors when
	// the key is present but its value can not be converted.
	ErrUnparsableValue = errors.New("ini: unparsable value")

	// ErrInvalidEnumValue is returned by [Enum] when the stored value
	// does not name any of the known enum variants.
	ErrInvalidEnumValue = errors.New("ini: invalid enum value")
)

// KeyError describes a failed strict lookup of a single key.
type KeyError struct {
	Section string
	Key     string
	Value   string
	Cause   error
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	if errors.Is(e.Cause, ErrMissingKey) {
		return fmt.Sprintf("%s: [%s] %s", e.Cause, e.Section, e.Key)
	}
	return fmt.Sprintf("%s: [%s] %s=%q", e.Cause, e.Section, e.Key, e.Value)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e *KeyError) Unwrap() error {
	return e.Cause
}

func missingKey(s *Section, key string) error {
	return &KeyError{Section: s.name, Key: key, Cause: ErrMissingKey}
}

func unparsableValue(s *Section, key, value string, cause error) error {
	return &KeyError{Section: s.name, Key: key, Value: value, Cause: cause}
}
