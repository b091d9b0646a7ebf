// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"

	"github.com/devblok/korumesh/gfx/vkr"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type deviceReport struct {
	vkr.PhysicalDeviceInfo
	FeatureNames      string   `json:"featureNames"`
	MissingExtensions []string `json:"missingExtensions,omitempty"`
	MissingFeatures   string   `json:"missingFeatures,omitempty"`
}

// newDeviceReport checks the device against the configured extensions and,
// if given, the features a layout requires.
func newDeviceReport(info vkr.PhysicalDeviceInfo, extensions []string, layout *vkr.MeshLayout) deviceReport {
	report := deviceReport{
		PhysicalDeviceInfo: info,
		FeatureNames:       info.Features.String(),
	}
	for _, ext := range extensions {
		if !info.HasExtension(ext) {
			report.MissingExtensions = append(report.MissingExtensions, ext)
		}
	}
	if layout != nil {
		if missing := info.Missing(layout.RequiredFeatures()); missing != 0 {
			report.MissingFeatures = missing.String()
		}
	}
	return report
}

func newDevicesCommand(a *app) *cobra.Command {
	var src source
	cmd := &cobra.Command{
		Use:   "devices [file.toml]",
		Short: "List physical devices, optionally checking them against a layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var layout *vkr.MeshLayout
			if src.preset != "" || len(args) > 0 {
				var err error
				if _, layout, err = src.load(a, args); err != nil {
					return err
				}
				defer layout.Release()
			}

			devices, err := vkr.EnumeratePhysicalDevices(vkr.DefaultApplicationInfo)
			if err != nil {
				return errors.Wrap(err, "device query")
			}

			reports := make([]deviceReport, 0, len(devices))
			for _, info := range devices {
				report := newDeviceReport(info, a.config.Renderer.DeviceExtensions, layout)
				logrus.WithFields(logrus.Fields{
					"id":       info.ID,
					"name":     info.Name,
					"features": report.FeatureNames,
				}).Debug("physical device")
				reports = append(reports, report)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		},
	}
	src.register(cmd)
	return cmd
}
