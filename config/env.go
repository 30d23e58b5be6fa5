// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
	"strings"

	"github.com/z5labs/ini/config/key"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source which will apply its config from the
// environment variables of the current process which start with
// prefix followed by '_'. An empty prefix selects every variable.
//
// The remainder of the variable name is split on "__" so that
// APP_CAR_0__MODEL=abc is set under the chain {CAR_0, MODEL}.
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if len(src.prefix) > 0 {
			k, ok = strings.CutPrefix(k, src.prefix+"_")
			if !ok || len(k) == 0 {
				continue
			}
		}

		err := store.Set(envKey(k), v)
		if err != nil {
			return err
		}
	}
	return nil
}

func envKey(name string) key.Keyer {
	parts := strings.Split(name, "__")
	if len(parts) == 1 {
		return key.Name(name)
	}
	chain := make(key.Chain, len(parts))
	for i, p := range parts {
		chain[i] = key.Name(p)
	}
	return chain
}
