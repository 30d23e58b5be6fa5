// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"

	"github.com/z5labs/ini/inifile"
	"github.com/z5labs/ini/pkg/slogfield"

	"github.com/spf13/cobra"
)

var errNothingToRemove = errors.New("either SECTION or --prefix is required")

func newRmCmd(c *cli) *cobra.Command {
	var (
		prefix string
		start  int
		key    string
	)

	cmd := &cobra.Command{
		Use:   "rm FILE [SECTION]",
		Short: "Remove a section, a key or a numbered run of sections",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if len(args) == 1 && len(prefix) == 0 {
				return errNothingToRemove
			}

			doc, err := inifile.LoadFile(path)
			if err != nil {
				return err
			}

			switch {
			case len(args) == 2 && len(key) > 0:
				if s, ok := doc.Lookup(args[1]); ok {
					s.Remove(key)
				}
				c.log.InfoContext(cmd.Context(), "removed key", slogfield.Path(path), slogfield.Section(args[1]), slogfield.Key(key))
			case len(args) == 2:
				doc.RemoveSection(args[1])
				c.log.InfoContext(cmd.Context(), "removed section", slogfield.Path(path), slogfield.Section(args[1]))
			default:
				n := doc.RemoveSectionsByPrefix(prefix, start)
				c.log.InfoContext(
					cmd.Context(),
					"removed sections",
					slogfield.Path(path),
					slogfield.Prefix(prefix),
					slogfield.Int("count", n),
				)
			}

			return inifile.Save(path, doc)
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "remove the PREFIX_N run")
	cmd.Flags().IntVar(&start, "start", 0, "first index used with --prefix")
	cmd.Flags().StringVar(&key, "key", "", "remove only this key from SECTION")
	return cmd
}
