// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"io"

	"github.com/z5labs/ini/internal/try"

	"gopkg.in/yaml.v3"
)

// Yaml is a Source reading a single YAML document whose top level
// is a mapping. Nested mappings play the role of INI sections.
type Yaml struct {
	r io.Reader
}

// FromYaml returns a Yaml source for r. If r is an io.Closer it is
// closed once applied.
func FromYaml(r io.Reader) Yaml {
	return Yaml{r: r}
}

func (src Yaml) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	// read up front so reader failures stay distinguishable from syntax errors
	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	var m map[string]any
	if err = yaml.Unmarshal(b, &m); err != nil {
		return &FormatError{Format: "yaml", Cause: err}
	}
	return Map(m).Apply(store)
}
