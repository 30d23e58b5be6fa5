// Copyright (c) 2023 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slogfield

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJsonHandler(t *testing.T) {
	testCases := []struct {
		name     string
		attr     slog.Attr
		key      string
		expected any
	}{
		{name: "duration", attr: Duration("took", 5*time.Second), key: "took", expected: float64(5 * time.Second)},
		{name: "error", attr: Error(errors.New("boom")), key: "error", expected: "boom"},
		{name: "string", attr: String("op", "WRITE"), key: "op", expected: "WRITE"},
		{name: "int", attr: Int("count", 3), key: "count", expected: float64(3)},
		{name: "path", attr: Path("/tmp/race.ini"), key: "path", expected: "/tmp/race.ini"},
		{name: "section", attr: Section("CAR_0"), key: "section", expected: "CAR_0"},
		{name: "key", attr: Key("MODEL"), key: "key", expected: "MODEL"},
		{name: "prefix", attr: Prefix("CAR"), key: "prefix", expected: "CAR"},
		{name: "sections", attr: Sections(4), key: "sections", expected: float64(4)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))
			log.LogAttrs(context.Background(), slog.LevelInfo, "hello", tc.attr)

			var res map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
			require.Equal(t, tc.expected, res[tc.key])
		})
	}

	t.Run("nil error is dropped", func(t *testing.T) {
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		log.LogAttrs(context.Background(), slog.LevelInfo, "hello", Error(nil))

		var res map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
		require.NotContains(t, res, "error")
	})
}
