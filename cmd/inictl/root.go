// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/z5labs/ini/config"
	"github.com/z5labs/ini/pkg/slogfield"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type settings struct {
	Log struct {
		Level  string `config:"LEVEL"`
		Format string `config:"FORMAT"`
	} `config:"LOG"`
}

// cli carries the state shared by every sub command.
type cli struct {
	v   *viper.Viper
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{
		v:   viper.New(),
		log: slog.New(slog.DiscardHandler),
	}

	cmd := &cobra.Command{
		Use:           "inictl",
		Short:         "Inspect and edit INI configuration files",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "INI file with a [LOG] section providing defaults")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")

	c.v.SetEnvPrefix("INICTL")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	c.v.AutomaticEnv()
	c.v.BindPFlag("config", flags.Lookup("config"))
	c.v.BindPFlag("log.level", flags.Lookup("log-level"))
	c.v.BindPFlag("log.format", flags.Lookup("log-format"))

	cmd.AddCommand(
		newGetCmd(c),
		newSetCmd(c),
		newSectionsCmd(c),
		newRmCmd(c),
		newFmtCmd(c),
		newExportCmd(c),
		newWatchCmd(c),
	)
	return cmd
}

func (c *cli) init(cmd *cobra.Command) error {
	s, err := readSettings(c.v.GetString("config"))
	if err != nil {
		return err
	}
	if len(s.Log.Level) > 0 {
		c.v.SetDefault("log.level", s.Log.Level)
	}
	if len(s.Log.Format) > 0 {
		c.v.SetDefault("log.format", s.Log.Format)
	}

	h, err := newLogHandler(cmd.ErrOrStderr(), c.v.GetString("log.level"), c.v.GetString("log.format"))
	if err != nil {
		return err
	}
	c.log = slog.New(h)
	c.log.Debug("initialized", slogfield.String("command", cmd.Name()))
	return nil
}

// readSettings reads path, or when path is empty the optional
// inictl/inictl.ini under the user config directory.
func readSettings(path string) (settings, error) {
	var s settings

	var r *config.FileReader
	switch {
	case len(path) > 0:
		r = config.NewFileReader(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	default:
		dir, err := os.UserConfigDir()
		if err != nil {
			return s, nil
		}
		path = filepath.Join(dir, "inictl", "inictl.ini")
		r = config.NewFileReader(os.DirFS(filepath.Dir(path)), filepath.Base(path), config.Optional())
	}

	m, err := config.Read(
		config.FromIni(r),
		config.FromEnv("INICTL"),
	)
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	err = m.Unmarshal(&s)
	if err != nil {
		return s, fmt.Errorf("decode config %s: %w", path, err)
	}
	return s, nil
}

func newLogHandler(w io.Writer, level, format string) (slog.Handler, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
