// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/devblok/korumesh/gfx/vkr"
	"github.com/devblok/korumesh/meshdesc"
	vk "github.com/devblok/vulkan"
	"github.com/pierrec/lz4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type bindingDump struct {
	Binding   uint32 `json:"binding"`
	Stride    uint32 `json:"stride"`
	InputRate string `json:"inputRate"`
	Divisor   uint32 `json:"divisor,omitempty"`
}

type attributeDump struct {
	Location uint32 `json:"location"`
	Binding  uint32 `json:"binding"`
	Format   string `json:"format"`
	VkFormat int32  `json:"vkFormat"`
	Offset   uint32 `json:"offset"`
}

// layoutDump mirrors the vertex input and input assembly state of a layout
type layoutDump struct {
	Name             string          `json:"name,omitempty"`
	Primitive        string          `json:"primitive"`
	Topology         int32           `json:"topology"`
	PrimitiveRestart bool            `json:"primitiveRestart"`
	Bindings         []bindingDump   `json:"bindings"`
	Attributes       []attributeDump `json:"attributes"`
	DivisorChained   bool            `json:"divisorChained"`
	RequiredFeatures string          `json:"requiredFeatures"`
}

func newLayoutDump(name string, layout *vkr.MeshLayout) layoutDump {
	assembly := layout.InputAssemblyStateCreateInfo()
	dump := layoutDump{
		Name:             name,
		Primitive:        layout.Primitive().String(),
		Topology:         int32(assembly.Topology),
		PrimitiveRestart: assembly.PrimitiveRestartEnable != 0,
		Bindings:         []bindingDump{},
		Attributes:       []attributeDump{},
		RequiredFeatures: layout.RequiredFeatures().String(),
	}
	_, dump.DivisorChained = layout.VertexInputDivisorState()

	divisors := make(map[uint32]uint32)
	for _, d := range layout.Divisors() {
		divisors[d.Binding] = d.Divisor
	}
	for _, b := range layout.Bindings() {
		rate := "vertex"
		if b.InputRate == vk.VertexInputRateInstance {
			rate = "instance"
		}
		dump.Bindings = append(dump.Bindings, bindingDump{
			Binding:   b.Binding,
			Stride:    b.Stride,
			InputRate: rate,
			Divisor:   divisors[b.Binding],
		})
	}
	for _, a := range layout.Attributes() {
		dump.Attributes = append(dump.Attributes, attributeDump{
			Location: a.Location,
			Binding:  a.Binding,
			Format:   vkr.VertexFormat(a.Format).String(),
			VkFormat: int32(a.Format),
			Offset:   a.Offset,
		})
	}
	return dump
}

// writeDump encodes the dump as indented JSON, lz4 compressed if asked.
func writeDump(w io.Writer, dump layoutDump, compress bool) error {
	if !compress {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(dump)
	}

	zw := lz4.NewWriter(w)
	if err := json.NewEncoder(zw).Encode(dump); err != nil {
		return errors.Wrap(err, "lz4")
	}
	return zw.Close()
}

// writeDumpClose writes the dump and closes w, reporting the first error.
func writeDumpClose(w io.WriteCloser, dump layoutDump, compress bool) error {
	if err := writeDump(w, dump, compress); err != nil {
		w.Close()
		return err
	}
	return errors.Wrap(w.Close(), "close")
}

type source struct {
	preset string
}

func (s *source) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.preset, "preset", "p", "", "use a preset instead of a description file")
}

// load resolves the description from either a file argument or the
// preset flag, then builds it.
func (s *source) load(a *app, args []string) (string, *vkr.MeshLayout, error) {
	var (
		desc *meshdesc.Description
		err  error
	)
	switch {
	case s.preset != "" && len(args) > 0:
		return "", nil, errors.New("either a description file or --preset, not both")
	case s.preset != "":
		desc, err = a.presets.Get(s.preset)
	case len(args) == 1:
		desc, err = meshdesc.Load(args[0])
	default:
		return "", nil, errors.New("a description file or --preset is required")
	}
	if err != nil {
		return "", nil, err
	}

	log := logrus.WithFields(logrus.Fields{
		"name":       desc.Name,
		"primitive":  desc.Primitive,
		"bindings":   len(desc.Bindings),
		"attributes": len(desc.Attributes),
	})
	layout, err := desc.Build()
	if err != nil {
		log.WithError(err).Warn("layout rejected")
		return "", nil, err
	}
	log.WithField("features", layout.RequiredFeatures()).Debug("layout built")
	return desc.Name, layout, nil
}

func newDumpCommand(a *app) *cobra.Command {
	var (
		src      source
		output   string
		compress bool
	)
	cmd := &cobra.Command{
		Use:   "dump [file.toml]",
		Short: "Dump the Vulkan vertex input state of a layout as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, layout, err := src.load(a, args)
			if err != nil {
				return err
			}
			defer layout.Release()

			if !cmd.Flags().Changed("compress") {
				compress = a.config.Mesh.DumpCompress
			}

			dump := newLayoutDump(name, layout)
			if output == "" {
				err = writeDump(cmd.OutOrStdout(), dump, compress)
			} else {
				var f *os.File
				if f, err = os.Create(output); err == nil {
					err = writeDumpClose(f, dump, compress)
				}
			}
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"name":     name,
				"output":   output,
				"compress": compress,
			}).Debug("layout dumped")
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVarP(&compress, "compress", "z", false, "lz4 compress the output")
	return cmd
}

func newValidateCommand(a *app) *cobra.Command {
	var src source
	cmd := &cobra.Command{
		Use:   "validate [file.toml]",
		Short: "Build a layout and report the device features it needs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, layout, err := src.load(a, args)
			if err != nil {
				return err
			}
			defer layout.Release()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, requires %s\n", displayName(name, args), layout.RequiredFeatures())
			return nil
		},
	}
	src.register(cmd)
	return cmd
}

func displayName(name string, args []string) string {
	if name != "" {
		return name
	}
	if len(args) > 0 {
		return args[0]
	}
	return "layout"
}
