// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package inifile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/z5labs/ini"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func waitForDoc(t *testing.T, docs <-chan *ini.Document) *ini.Document {
	t.Helper()
	select {
	case doc := <-docs:
		return doc
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for document")
		return nil
	}
}

func TestWatcher_Run(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "race.ini")
	require.NoError(t, os.WriteFile(path, []byte("[RACE]\nLAPS=1\n"), 0o644))

	docs := make(chan *ini.Document, 10)
	w := NewWatcher(path, func(ctx context.Context, doc *ini.Document) error {
		docs <- doc
		return nil
	}, Debounce(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	doc := waitForDoc(t, docs)
	require.Equal(t, 1, doc.Section("RACE").GetInt("LAPS", 0))

	require.NoError(t, WriteValue(path, "RACE", "LAPS", "2"))

	for {
		doc = waitForDoc(t, docs)
		if doc.Section("RACE").GetInt("LAPS", 0) == 2 {
			break
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_Run_KeepsRunning(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "race.ini")
	require.NoError(t, os.WriteFile(path, []byte("[RACE]\nLAPS=1\n"), 0o644))

	calls := make(chan int, 10)
	n := 0
	w := NewWatcher(path, func(ctx context.Context, doc *ini.Document) error {
		n++
		calls <- n
		if n == 1 {
			panic(errors.New("handler exploded"))
		}
		return nil
	}, Debounce(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first call")
	}

	require.NoError(t, os.WriteFile(path, []byte("[RACE]\nLAPS=2\n"), 0o644))

	select {
	case got := <-calls:
		require.GreaterOrEqual(t, got, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher stopped after a failing handler")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_Run_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing", "race.ini"), func(context.Context, *ini.Document) error {
		return nil
	})
	require.Error(t, w.Run(context.Background()))
}
