// Copyright (c) 2023 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides the slog attributes shared by every
// log call site, so the same thing is always logged under the same key.
package slogfield

import (
	"log/slog"
	"time"
)

func Duration(key string, d time.Duration) slog.Attr {
	return slog.Duration(key, d)
}

// Error logs err under "error". A nil error is logged as an empty group
// so handlers drop it.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Group("error")
	}
	return slog.String("error", err.Error())
}

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

func Int(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Path is the file an operation is working on.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Section is an INI section name.
func Section(name string) slog.Attr {
	return slog.String("section", name)
}

// Key is an INI key within a section.
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Prefix is the name prefix of a numbered section run such as CAR_0, CAR_1.
func Prefix(prefix string) slog.Attr {
	return slog.String("prefix", prefix)
}

// Sections is the number of sections in a document.
func Sections(n int) slog.Attr {
	return slog.Int("sections", n)
}
