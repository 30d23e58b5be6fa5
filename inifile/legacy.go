// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package inifile

import (
	"bufio"
	"errors"
	"io/fs"
	"strings"

	"github.com/z5labs/ini"
)

// ReadValue looks up a single key without building a document. The file
// is scanned line by line and only lines below a header which, after
// trimming, is exactly "[section]" are considered. If the key occurs
// more than once the last value wins.
func ReadValue(fsys fs.FS, name, section, key string) (string, bool, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", false, err
	}
	text, err := Decode(b)
	if err != nil {
		return "", false, &fs.PathError{Op: "decode", Path: name, Err: err}
	}

	header := "[" + section + "]"

	var (
		value   string
		found   bool
		inScope bool
	)
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inScope = line == header
			continue
		}
		if !inScope {
			continue
		}

		k, v, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(k) != key {
			continue
		}
		value = strings.TrimSpace(stripComment(v))
		found = true
	}
	if err := sc.Err(); err != nil {
		return "", false, err
	}
	return value, found, nil
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, ';'); i >= 0 {
		s = s[:i]
	}
	if i := strings.Index(s, "//"); i >= 0 {
		s = s[:i]
	}
	return s
}

// WriteValue sets a single key in the file at path, creating the file
// and section when needed. The rest of the file is rewritten in normalized
// form, so comments are not preserved.
func WriteValue(path, section, key, value string) error {
	doc, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		doc, err = ini.New(), nil
	}
	if err != nil {
		return err
	}

	doc.Section(section).Set(key, value)
	return Save(path, doc)
}
