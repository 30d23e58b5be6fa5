// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/z5labs/ini"
	"github.com/z5labs/ini/inifile"
	"github.com/z5labs/ini/pkg/slogfield"

	"github.com/spf13/cobra"
)

func newGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE SECTION KEY",
		Short: "Print a single value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, section, key := args[0], args[1], args[2]

			v, found, err := inifile.ReadValue(os.DirFS(filepath.Dir(path)), filepath.Base(path), section, key)
			if err != nil {
				return err
			}
			if !found {
				return &ini.KeyError{Section: section, Key: key, Cause: ini.ErrMissingKey}
			}

			c.log.DebugContext(
				cmd.Context(),
				"read value",
				slogfield.Path(path),
				slogfield.Section(section),
				slogfield.Key(key),
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}
