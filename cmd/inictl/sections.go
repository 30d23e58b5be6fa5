// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"

	"github.com/z5labs/ini/inifile"

	"github.com/spf13/cobra"
)

func newSectionsCmd(c *cli) *cobra.Command {
	var (
		prefix string
		start  int
	)

	cmd := &cobra.Command{
		Use:   "sections FILE",
		Short: "List section names in document order",
		Long: `List section names in document order.

With --prefix only the numbered run PREFIX_START, PREFIX_START+1, ...
is listed, stopping at the first missing index.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := inifile.LoadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(prefix) == 0 {
				for _, name := range doc.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			for s := range doc.SectionsByPrefix(prefix, start) {
				fmt.Fprintln(out, s.Name())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only list PREFIX_N sections")
	cmd.Flags().IntVar(&start, "start", 0, "first index used with --prefix")
	return cmd
}
