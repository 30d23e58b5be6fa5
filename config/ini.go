// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"io"

	"github.com/z5labs/ini"
	"github.com/z5labs/ini/config/key"
	"github.com/z5labs/ini/internal/try"
	"github.com/z5labs/ini/inifile"
)

// Ini represents a Source where its underlying format is INI.
type Ini struct {
	r io.Reader
}

// FromIni returns a source which will apply its config from the
// sections of the INI document read from the given io.Reader.
// Every key is set under the chain {section, key}.
func FromIni(r io.Reader) Ini {
	return Ini{r: r}
}

func (src Ini) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	text, err := inifile.Decode(b)
	if err != nil {
		return &FormatError{Format: "ini", Cause: err}
	}
	return FromDocument(ini.Parse(text)).Apply(store)
}

// Document represents a Source backed by an already parsed ini.Document.
type Document struct {
	doc *ini.Document
}

// FromDocument returns a source which applies the sections of doc.
func FromDocument(doc *ini.Document) Document {
	return Document{doc: doc}
}

// Apply sets every key of the document under the chain {section, key},
// in document order.
func (src Document) Apply(store Store) error {
	for name, s := range src.doc.Sections() {
		for k, v := range s.All() {
			err := store.Set(key.Section(name, k), v)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
