// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/shapes/config"
	"cogentcore.org/shapes/demos"
	"cogentcore.org/shapes/harness"
	"cogentcore.org/shapes/logx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newRootCmd returns the root command, which runs demos on p.
// Demo listings go to out and log messages to logw.
func newRootCmd(p harness.Platform, out, logw io.Writer) *cobra.Command {
	cfg := config.New()
	var file string

	root := &cobra.Command{
		Use:           "shapes",
		Short:         "shapes draws simple 2D shapes with OpenGL",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd.Flags(), cfg, file, logw)
		},
	}

	fl := root.PersistentFlags()
	def := config.New()
	fl.StringVarP(&file, "config", "c", "", "TOML or YAML config file (default "+config.DefaultFile+" if it exists)")
	fl.Int("width", def.Width, "window width")
	fl.Int("height", def.Height, "window height")
	fl.String("title", def.Title, "window title (default is the demo's title)")
	fl.String("gl", def.GLVersion, "OpenGL core profile version")
	fl.Bool("vsync", def.VSync, "synchronize buffer swaps with the display refresh")
	fl.Int("frames", def.Frames, "close after this many frames (0 runs until closed)")
	fl.BoolP("verbose", "v", false, "show info log messages")
	fl.Bool("vv", false, "show debug log messages")
	fl.BoolP("quiet", "q", false, "only show error log messages")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "list the demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range demos.All {
				fmt.Fprintf(out, "%-10s %s\n", d.Name, d.Doc)
			}
			return nil
		},
	})
	for _, d := range demos.All {
		root.AddCommand(&cobra.Command{
			Use:   d.Name,
			Short: "draw " + d.Doc,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				hc := d.New()
				cfg.Apply(hc)
				slog.Debug("shapes: running demo", "demo", d.Name, "size", hc.Size, "gl", hc.GLVersion)
				return harness.Run(cmd.Context(), hc, p)
			},
		})
	}
	return root
}

// loadConfig fills cfg from the config file, if any, and then from
// the flags that were set, and sets up logging.
func loadConfig(flags *pflag.FlagSet, cfg *config.Config, file string, logw io.Writer) error {
	if file != "" {
		if err := config.Open(cfg, file); err != nil {
			return err
		}
	} else {
		def, err := config.OpenDefault(cfg)
		if err != nil {
			return err
		}
		file = def
	}
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" || f.Name == "help" {
			return
		}
		err = cfg.Set(f.Name, f.Value.String())
	})
	if err != nil {
		return err
	}
	logx.Init(logw, logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet))
	if file != "" {
		slog.Info("shapes: loaded config", "file", file)
	}
	return cfg.Validate()
}
