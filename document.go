// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package ini

import (
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Document is an ordered collection of named sections.
//
// A Document is not safe for concurrent use. Callers sharing one
// between goroutines must synchronize access themselves.
type Document struct {
	names    []string
	sections map[string]*Section
}

// New returns an empty Document.
func New() *Document {
	return &Document{
		sections: make(map[string]*Section),
	}
}

// Section returns the section with the given name. If no such
// section exists, an empty one is created and appended to the document.
func (d *Document) Section(name string) *Section {
	if s, ok := d.sections[name]; ok {
		return s
	}
	s := newSection(name)
	d.names = append(d.names, name)
	d.sections[name] = s
	return s
}

// Lookup returns the section with the given name without creating it.
func (d *Document) Lookup(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// replace installs a fresh, empty section under name. An existing
// section of the same name keeps its position in document order.
func (d *Document) replace(name string) *Section {
	s := newSection(name)
	if _, ok := d.sections[name]; !ok {
		d.names = append(d.names, name)
	}
	d.sections[name] = s
	return s
}

// ContainsSection reports whether a section with the given name exists.
func (d *Document) ContainsSection(name string) bool {
	_, ok := d.sections[name]
	return ok
}

// RemoveSection deletes the named section. It is a no-op if the section does not exist.
func (d *Document) RemoveSection(name string) {
	if _, ok := d.sections[name]; !ok {
		return
	}
	delete(d.sections, name)
	d.names = slices.DeleteFunc(d.names, func(n string) bool { return n == name })
}

// Clear removes every section.
func (d *Document) Clear() {
	d.names = nil
	clear(d.sections)
}

// Len returns the number of sections.
func (d *Document) Len() int {
	return len(d.names)
}

// IsEmpty reports whether the document has no sections at all.
// Sections without any keys still count.
func (d *Document) IsEmpty() bool {
	return len(d.names) == 0
}

// Names returns the section names in document order.
func (d *Document) Names() []string {
	return slices.Clone(d.names)
}

// Sections iterates over all sections in document order.
func (d *Document) Sections() iter.Seq2[string, *Section] {
	return func(yield func(string, *Section) bool) {
		for _, name := range slices.Clone(d.names) {
			s, ok := d.sections[name]
			if !ok {
				continue
			}
			if !yield(name, s) {
				return
			}
		}
	}
}

// PrefixedName returns the name of the n-th numbered section for prefix,
// e.g. PrefixedName("CAR", 2) is "CAR_2".
func PrefixedName(prefix string, n int) string {
	return prefix + "_" + strconv.Itoa(n)
}

// SectionsByPrefix iterates over the sections named prefix_startFrom,
// prefix_startFrom+1, ... stopping at the first missing index.
//
// The sequence is evaluated lazily and starts over from startFrom every
// time it is ranged over.
func (d *Document) SectionsByPrefix(prefix string, startFrom int) iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		for i := startFrom; ; i++ {
			s, ok := d.sections[PrefixedName(prefix, i)]
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// RemoveSectionsByPrefix removes the sections named prefix_startFrom,
// prefix_startFrom+1, ... until the first missing index and returns how
// many were removed. Sections after a gap are left untouched.
func (d *Document) RemoveSectionsByPrefix(prefix string, startFrom int) int {
	n := 0
	for i := startFrom; ; i++ {
		name := PrefixedName(prefix, i)
		if !d.ContainsSection(name) {
			return n
		}
		d.RemoveSection(name)
		n++
	}
}

// Serialize renders the document as INI text. Each section is written
// as a "[name]" header followed by its key=value pairs, with a blank line
// between sections. Comments and formatting of parsed input are not kept.
func (d *Document) Serialize() string {
	var sb strings.Builder
	d.write(&sb)
	return sb.String()
}

// String implements the fmt.Stringer interface.
func (d *Document) String() string {
	return d.Serialize()
}

// WriteTo implements the io.WriterTo interface.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Serialize())
	return int64(n), err
}

func (d *Document) write(sb *strings.Builder) {
	for i, name := range d.names {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		sb.WriteString(name)
		sb.WriteString("]\n")
		for k, v := range d.sections[name].All() {
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(v)
			sb.WriteByte('\n')
		}
	}
}
