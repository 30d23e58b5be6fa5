// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package key

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChain_Key(t *testing.T) {
	testCases := []struct {
		name     string
		keyer    Keyer
		expected string
	}{
		{name: "name", keyer: Name("CAR"), expected: "CAR"},
		{name: "empty chain", keyer: Chain{}, expected: ""},
		{name: "section chain", keyer: Section("CAR_0", "MODEL"), expected: "CAR_0.MODEL"},
		{name: "nested chain", keyer: Chain{Name("a"), Chain{Name("b"), Name("c")}}, expected: "a.b.c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.keyer.Key())
		})
	}
}
