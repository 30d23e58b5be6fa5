// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"maps"
	"slices"

	"github.com/z5labs/ini/config/key"
)

// Map is a nested map[string]any which is both a Source and a Store.
// Sections are represented by map[string]any values.
type Map map[string]any

// Apply sets every leaf value of m on store, addressed by the chain
// of map keys leading to it. Keys are visited in sorted order.
func (m Map) Apply(store Store) error {
	return walk(store, nil, m)
}

func walk(store Store, prefix key.Chain, m map[string]any) error {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		chain := append(slices.Clip(prefix), key.Name(name))

		var err error
		switch v := m[name].(type) {
		case Map:
			err = walk(store, chain, v)
		case map[string]any:
			err = walk(store, chain, v)
		default:
			err = store.Set(chain, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Set stores v under k, creating intermediate sections as needed.
func (m Map) Set(k key.Keyer, v any) error {
	path, err := names(k)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return &SetError{Key: k.Key(), Cause: ErrEmptyKeyChain}
	}

	node := map[string]any(m)
	for i, name := range path[:len(path)-1] {
		switch child := node[name].(type) {
		case nil:
			next := make(map[string]any)
			node[name] = next
			node = next
		case map[string]any:
			node = child
		case Map:
			node = child
		default:
			return &SetError{Key: joined(path[:i+1]), Cause: ErrKeyConflict}
		}
	}

	last := path[len(path)-1]
	if _, isSection := node[last].(map[string]any); isSection {
		if _, replacing := v.(map[string]any); !replacing {
			return &SetError{Key: joined(path), Cause: ErrKeyConflict}
		}
	}
	node[last] = v
	return nil
}

// names flattens k, including chains nested inside chains.
func names(k key.Keyer) ([]string, error) {
	switch x := k.(type) {
	case key.Name:
		return []string{string(x)}, nil
	case key.Chain:
		var out []string
		for _, sub := range x {
			ns, err := names(sub)
			if err != nil {
				return nil, err
			}
			out = append(out, ns...)
		}
		return out, nil
	default:
		return nil, &SetError{Key: k.Key(), Cause: ErrUnknownKeyer}
	}
}

func joined(path []string) string {
	chain := make(key.Chain, len(path))
	for i, p := range path {
		chain[i] = key.Name(p)
	}
	return chain.Key()
}
