// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"github.com/z5labs/ini"
	"github.com/z5labs/ini/inifile"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Print the file as YAML, one mapping per section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := inifile.LoadFile(args[0])
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			err = enc.Encode(toYaml(doc))
			if err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

// toYaml builds the node tree by hand so section and key order survive.
func toYaml(doc *ini.Document) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for name, s := range doc.Sections() {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for k, v := range s.All() {
			body.Content = append(body.Content, str(k), str(v))
		}
		root.Content = append(root.Content, str(name), body)
	}
	return root
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
