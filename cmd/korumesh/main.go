// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command korumesh builds mesh layouts from TOML descriptions or the
// built-in presets, validates them and dumps the resulting Vulkan vertex
// input state.
package main

import (
	"os"

	"github.com/devblok/korumesh/core"
	"github.com/devblok/korumesh/meshdesc"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type app struct {
	envFiles  []string
	logLevel  string
	presetDir string

	config  core.Configuration
	presets *meshdesc.PresetBox
}

func (a *app) setup(cmd *cobra.Command) error {
	config, err := core.LoadConfiguration(a.envFiles...)
	if err != nil {
		return errors.Wrap(err, "configuration")
	}
	if cmd.Flags().Changed("log-level") {
		if config.Log.Level, err = logrus.ParseLevel(a.logLevel); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("preset-dir") {
		config.Mesh.PresetDir = a.presetDir
	}
	core.SetupLogging(logrus.StandardLogger(), config.Log)

	a.presets = meshdesc.DefaultPresets
	if config.Mesh.PresetDir != "" {
		if a.presets, err = meshdesc.NewPresetBox(config.Mesh.PresetDir); err != nil {
			return err
		}
		logrus.WithField("dir", config.Mesh.PresetDir).Debug("using preset directory")
	}
	a.config = config
	return nil
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "korumesh",
		Short:         "Build, validate and dump Vulkan mesh layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, "env", nil, "additional .env files to read")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level")
	flags.StringVar(&a.presetDir, "preset-dir", "", "directory with preset descriptions")

	root.AddCommand(
		newDumpCommand(a),
		newValidateCommand(a),
		newPresetsCommand(a),
		newShowCommand(a),
		newDevicesCommand(a),
	)
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("korumesh failed")
		os.Exit(1)
	}
}
