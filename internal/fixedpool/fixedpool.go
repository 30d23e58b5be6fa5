// Copyright (c) 2023 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package fixedpool runs independent tasks on a bounded number of goroutines.
package fixedpool

import (
	"context"
	"errors"
	"sync"

	"github.com/z5labs/ini/internal/try"
)

type Task func(context.Context) error

// Run executes every task using at most size goroutines at once.
// A failing or panicking task does not stop the others. All failures
// are joined into the returned error in task order.
//
// Tasks which have not started when ctx is cancelled are skipped and
// report ctx.Err().
func Run(ctx context.Context, size int, tasks ...Task) error {
	if size < 1 {
		size = 1
	}

	errs := make([]error, len(tasks))
	sem := make(chan struct{}, size)

	var wg sync.WaitGroup
	for i, task := range tasks {
		select {
		case <-ctx.Done():
			errs[i] = ctx.Err()
			continue
		case sem <- struct{}{}:
		}
		if err := ctx.Err(); err != nil {
			<-sem
			errs[i] = err
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			errs[i] = try.Run(ctx, task)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}
