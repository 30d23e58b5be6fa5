// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"io"
	"io/fs"
	"sync"
)

// FileReaderOption configures a FileReader.
type FileReaderOption func(*FileReader)

// Optional makes a missing file read as an empty one.
func Optional() FileReaderOption {
	return func(r *FileReader) {
		r.optional = true
	}
}

// FileReader opens its file on the first Read, so a Source such as
// FromIni(NewFileReader(os.DirFS(dir), "inictl.ini")) can be built
// before the file exists.
type FileReader struct {
	fsys     fs.FS
	name     string
	optional bool

	open    sync.Once
	openErr error
	file    fs.File
	closed  bool
}

func NewFileReader(fsys fs.FS, name string, opts ...FileReaderOption) *FileReader {
	r := &FileReader{
		fsys: fsys,
		name: name,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *FileReader) Read(b []byte) (int, error) {
	if r.closed {
		return 0, fs.ErrClosed
	}
	r.open.Do(func() {
		r.file, r.openErr = r.fsys.Open(r.name)
		if r.optional && errors.Is(r.openErr, fs.ErrNotExist) {
			r.openErr = io.EOF
		}
	})
	if r.openErr != nil {
		return 0, r.openErr
	}
	return r.file.Read(b)
}

// Close closes the underlying file if it was ever opened. Calling
// Close more than once is a no-op.
func (r *FileReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}
