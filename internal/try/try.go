// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try folds panics and deferred close failures into error results.
package try

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// PanicError wraps a value recovered from a panic.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap returns the recovered value when it is an error, otherwise nil.
func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Run calls f and reports a panic inside it as a PanicError.
func Run(ctx context.Context, f func(context.Context) error) (err error) {
	defer Recover(&err)
	return f(ctx)
}

// Recover must be deferred directly by the function whose named
// error result should receive the panic.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	join(err, PanicError{Value: r})
}

// CloseError wraps the error returned by io.Closer.Close.
type CloseError struct {
	Cause error
}

func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes v when it implements io.Closer. Readers handed to a
// config source may or may not need closing so anything is accepted.
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}
	if cerr := c.Close(); cerr != nil {
		join(err, CloseError{Cause: cerr})
	}
}

func join(dst *error, err error) {
	if *dst == nil {
		*dst = err
		return
	}
	*dst = errors.Join(*dst, err)
}
