// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKeyer  = errors.New("config: unknown key.Keyer implementation")
	ErrEmptyKeyChain = errors.New("config: empty key chain")

	// ErrKeyConflict is returned when a key already holding a plain
	// value is used as a section, or the other way around.
	ErrKeyConflict = errors.New("config: key conflicts with an existing value")
)

// SetError reports the key a Store could not set.
type SetError struct {
	Key   string
	Cause error
}

func (e *SetError) Error() string {
	return fmt.Sprintf("%s: %q", e.Cause, e.Key)
}

func (e *SetError) Unwrap() error {
	return e.Cause
}

// FormatError is returned by a Source whose input is not valid
// for its format.
type FormatError struct {
	Format string
	Cause  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Format, e.Cause)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}
