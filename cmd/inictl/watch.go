// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/z5labs/ini"
	"github.com/z5labs/ini/inifile"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newWatchCmd(c *cli) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print a summary line every time the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			docs := make(chan *ini.Document)
			w := inifile.NewWatcher(
				args[0],
				func(ctx context.Context, doc *ini.Document) error {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case docs <- doc:
						return nil
					}
				},
				inifile.LogHandler(c.log.Handler()),
				inifile.Debounce(debounce),
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return w.Run(gctx)
			})
			g.Go(func() error {
				out := cmd.OutOrStdout()
				for {
					select {
					case <-gctx.Done():
						return nil
					case doc := <-docs:
						fmt.Fprintf(out, "%s: %d sections\n", args[0], doc.Len())
					}
				}
			})
			return g.Wait()
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 250*time.Millisecond, "quiet period before reloading")
	return cmd
}
