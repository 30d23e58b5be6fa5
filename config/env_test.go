// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"testing"

	"github.com/z5labs/ini/config/key"

	"github.com/stretchr/testify/require"
)

func TestEnv_Apply(t *testing.T) {
	environ := func() []string {
		return []string{
			"HOME=/root",
			"APP_LOG_LEVEL=debug",
			"APP_CAR_0__MODEL=ks_mazda_mx5",
			"APP_",
			"APPLE=1",
			"MALFORMED",
		}
	}

	testCases := []struct {
		name     string
		prefix   string
		expected []kv
	}{
		{
			name:   "with prefix",
			prefix: "APP",
			expected: []kv{
				{key: "LOG_LEVEL", val: "debug"},
				{key: "CAR_0.MODEL", val: "ks_mazda_mx5"},
			},
		},
		{
			name:   "without prefix",
			prefix: "",
			expected: []kv{
				{key: "HOME", val: "/root"},
				{key: "APP_LOG_LEVEL", val: "debug"},
				{key: "APP_CAR_0.MODEL", val: "ks_mazda_mx5"},
				{key: "APP_", val: ""},
				{key: "APPLE", val: "1"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var kvs []kv
			store := storeFunc(func(k key.Keyer, a any) error {
				kvs = append(kvs, kv{key: k.Key(), val: a})
				return nil
			})

			src := Env{prefix: tc.prefix, environ: environ}
			err := src.Apply(store)
			require.NoError(t, err)
			require.Equal(t, tc.expected, kvs)
		})
	}

	t.Run("store error", func(t *testing.T) {
		storeErr := errors.New("failed to set key")
		store := storeFunc(func(k key.Keyer, a any) error {
			return storeErr
		})

		src := Env{prefix: "APP", environ: environ}
		require.ErrorIs(t, src.Apply(store), storeErr)
	})
}
