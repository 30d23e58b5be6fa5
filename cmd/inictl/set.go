// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"io/fs"

	"github.com/z5labs/ini"
	"github.com/z5labs/ini/inifile"
	"github.com/z5labs/ini/pkg/slogfield"

	"github.com/spf13/cobra"
)

func newSetCmd(c *cli) *cobra.Command {
	var identifier bool

	cmd := &cobra.Command{
		Use:   "set FILE SECTION KEY VALUE",
		Short: "Set a single value, creating the file and section when needed",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, section, key, value := args[0], args[1], args[2], args[3]

			if !identifier {
				err := inifile.WriteValue(path, section, key, value)
				if err != nil {
					return err
				}
				c.log.InfoContext(cmd.Context(), "set value", slogfield.Path(path), slogfield.Section(section), slogfield.Key(key))
				return nil
			}

			doc, err := loadOrNew(path)
			if err != nil {
				return err
			}
			doc.Section(section).SetIdentifier(key, value)

			err = inifile.Save(path, doc)
			if err != nil {
				return err
			}
			c.log.InfoContext(cmd.Context(), "set identifier", slogfield.Path(path), slogfield.Section(section), slogfield.Key(key))
			return nil
		},
	}

	cmd.Flags().BoolVar(&identifier, "identifier", false, "store the value lower cased")
	return cmd
}

func loadOrNew(path string) (*ini.Document, error) {
	doc, err := inifile.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ini.New(), nil
	}
	return doc, err
}
