// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"testing"

	"github.com/z5labs/ini/config/key"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFunc func(key.Keyer, any) error

func (f storeFunc) Set(k key.Keyer, v any) error {
	return f(k, v)
}

type customKeyer string

func (k customKeyer) Key() string {
	return string(k)
}

func TestMap_Apply(t *testing.T) {
	testCases := []struct {
		name     string
		m        Map
		expected []kv
	}{
		{
			name:     "empty",
			m:        Map{},
			expected: nil,
		},
		{
			name:     "top level key",
			m:        Map{"VERSION": "3"},
			expected: []kv{{key: "VERSION", val: "3"}},
		},
		{
			name: "sections in sorted order",
			m: Map{
				"CAR_1": Map{"MODEL": "b"},
				"CAR_0": map[string]any{
					"SKIN":  "red",
					"MODEL": "a",
				},
			},
			expected: []kv{
				{key: "CAR_0.MODEL", val: "a"},
				{key: "CAR_0.SKIN", val: "red"},
				{key: "CAR_1.MODEL", val: "b"},
			},
		},
		{
			name: "slices are leaves",
			m: Map{
				"TYRES": []map[string]any{{"COMPOUND": "soft"}},
			},
			expected: []kv{{key: "TYRES", val: []map[string]any{{"COMPOUND": "soft"}}}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []kv
			err := tc.m.Apply(storeFunc(func(k key.Keyer, v any) error {
				got = append(got, kv{key: k.Key(), val: v})
				return nil
			}))
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}

	t.Run("sibling chains do not share storage", func(t *testing.T) {
		var chains []key.Chain
		m := Map{"A": Map{"X": "1", "Y": "2", "Z": "3"}}
		err := m.Apply(storeFunc(func(k key.Keyer, _ any) error {
			chains = append(chains, k.(key.Chain))
			return nil
		}))
		require.NoError(t, err)
		require.Equal(t, []key.Chain{
			key.Section("A", "X"),
			key.Section("A", "Y"),
			key.Section("A", "Z"),
		}, chains)
	})

	t.Run("stops at the first store failure", func(t *testing.T) {
		setErr := errors.New("failed to set key")
		calls := 0
		m := Map{"A": Map{"X": "1"}, "B": Map{"Y": "2"}}

		err := m.Apply(storeFunc(func(key.Keyer, any) error {
			calls++
			return setErr
		}))
		require.ErrorIs(t, err, setErr)
		require.Equal(t, 1, calls)
	})
}

func TestMap_Set(t *testing.T) {
	t.Run("will nest values", func(t *testing.T) {
		testCases := []struct {
			name     string
			sets     []kv
			keys     []key.Keyer
			expected Map
		}{
			{
				name:     "name",
				keys:     []key.Keyer{key.Name("VERSION")},
				sets:     []kv{{val: "3"}},
				expected: Map{"VERSION": "3"},
			},
			{
				name:     "section chain",
				keys:     []key.Keyer{key.Section("CAR", "MODEL")},
				sets:     []kv{{val: "abc"}},
				expected: Map{"CAR": map[string]any{"MODEL": "abc"}},
			},
			{
				name: "chain nested in a chain",
				keys: []key.Keyer{key.Chain{key.Name("A"), key.Section("B", "C")}},
				sets: []kv{{val: "x"}},
				expected: Map{
					"A": map[string]any{"B": map[string]any{"C": "x"}},
				},
			},
			{
				name:     "later value wins",
				keys:     []key.Keyer{key.Section("CAR", "MODEL"), key.Section("CAR", "MODEL")},
				sets:     []kv{{val: "abc"}, {val: "def"}},
				expected: Map{"CAR": map[string]any{"MODEL": "def"}},
			},
			{
				name:     "siblings share a section",
				keys:     []key.Keyer{key.Section("CAR", "MODEL"), key.Section("CAR", "SKIN")},
				sets:     []kv{{val: "abc"}, {val: "red"}},
				expected: Map{"CAR": map[string]any{"MODEL": "abc", "SKIN": "red"}},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				store := make(Map)
				for i, k := range tc.keys {
					require.NoError(t, store.Set(k, tc.sets[i].val))
				}
				require.Equal(t, tc.expected, store)
			})
		}
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if an unknown key.Keyer is used", func(t *testing.T) {
			err := make(Map).Set(customKeyer("CAR"), "abc")

			var serr *SetError
			if !assert.ErrorAs(t, err, &serr) {
				return
			}
			if !assert.ErrorIs(t, err, ErrUnknownKeyer) {
				return
			}
			if !assert.Equal(t, "CAR", serr.Key) {
				return
			}
		})

		t.Run("if an empty key.Chain is used", func(t *testing.T) {
			err := make(Map).Set(key.Chain{}, "abc")
			if !assert.ErrorIs(t, err, ErrEmptyKeyChain) {
				return
			}
		})

		t.Run("if a plain value is later used as a section", func(t *testing.T) {
			store := Map{"CAR": "abc"}

			err := store.Set(key.Section("CAR", "MODEL"), "abc")

			var serr *SetError
			if !assert.ErrorAs(t, err, &serr) {
				return
			}
			if !assert.ErrorIs(t, err, ErrKeyConflict) {
				return
			}
			if !assert.Equal(t, "CAR", serr.Key) {
				return
			}
			if !assert.NotEmpty(t, serr.Error()) {
				return
			}
		})

		t.Run("if a section is later used as a plain value", func(t *testing.T) {
			store := Map{"CAR": map[string]any{"MODEL": "abc"}}

			err := store.Set(key.Name("CAR"), "abc")
			if !assert.ErrorIs(t, err, ErrKeyConflict) {
				return
			}
			if !assert.Equal(t, Map{"CAR": map[string]any{"MODEL": "abc"}}, store) {
				return
			}
		})
	})
}
