// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package inifile connects ini documents to the file system.
package inifile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/z5labs/ini"

	"github.com/google/renameio/v2"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidEncoding is returned when file contents are neither
// UTF-8 nor UTF-16 with a byte order mark.
var ErrInvalidEncoding = errors.New("inifile: invalid text encoding")

var (
	bomUTF8    = []byte{0xef, 0xbb, 0xbf}
	bomUTF16LE = []byte{0xff, 0xfe}
	bomUTF16BE = []byte{0xfe, 0xff}
)

// Decode converts raw file contents to text. UTF-8 input may start with
// a byte order mark. UTF-16 input, as written by many Windows editors,
// is only recognized by its byte order mark.
func Decode(b []byte) (string, error) {
	if bytes.HasPrefix(b, bomUTF16LE) || bytes.HasPrefix(b, bomUTF16BE) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(b)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
		}
		return string(out), nil
	}

	b = bytes.TrimPrefix(b, bomUTF8)
	if !utf8.Valid(b) {
		return "", ErrInvalidEncoding
	}
	return string(b), nil
}

// Load reads and parses the named file from fsys.
func Load(fsys fs.FS, name string) (*ini.Document, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}
	return parse(name, b)
}

// LoadFile reads and parses the file at path.
func LoadFile(path string) (*ini.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(path, b)
}

func parse(name string, b []byte) (*ini.Document, error) {
	text, err := Decode(b)
	if err != nil {
		return nil, &fs.PathError{Op: "decode", Path: name, Err: err}
	}
	return ini.Parse(text), nil
}

// Save atomically replaces the file at path with the serialized document.
// Readers observe either the old or the new contents, never a partial write.
// New files are created with mode 0644, existing files keep their mode.
func Save(path string, doc *ini.Document) (err error) {
	pf, err := renameio.NewPendingFile(
		path,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		// no-op once the file has been committed
		cerr := pf.Cleanup()
		if err == nil && cerr != nil {
			err = fmt.Errorf("cleanup pending file: %w", cerr)
		}
	}()

	_, err = doc.WriteTo(pf)
	if err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return pf.CloseAtomicallyReplace()
}
