// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"bytes"
	"context"
	"fmt"
	"runtime"

	"github.com/z5labs/ini/inifile"
	"github.com/z5labs/ini/internal/fixedpool"
	"github.com/z5labs/ini/pkg/slogfield"

	"github.com/spf13/cobra"
)

func newFmtCmd(c *cli) *cobra.Command {
	var (
		write bool
		jobs  int
	)

	cmd := &cobra.Command{
		Use:   "fmt FILE...",
		Short: "Print files in normalized form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outs := make([]bytes.Buffer, len(args))
			tasks := make([]fixedpool.Task, len(args))
			for i, path := range args {
				tasks[i] = func(ctx context.Context) error {
					doc, err := inifile.LoadFile(path)
					if err != nil {
						return err
					}
					if !write {
						_, err = doc.WriteTo(&outs[i])
						return err
					}

					err = inifile.Save(path, doc)
					if err != nil {
						return err
					}
					c.log.InfoContext(ctx, "formatted file", slogfield.Path(path))
					return nil
				}
			}

			err := fixedpool.Run(cmd.Context(), jobs, tasks...)

			w := cmd.OutOrStdout()
			for i := range outs {
				if outs[i].Len() == 0 {
					continue
				}
				if len(args) > 1 {
					fmt.Fprintf(w, "# %s\n", args[i])
				}
				outs[i].WriteTo(w)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to each FILE")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of files processed at once")
	return cmd
}
