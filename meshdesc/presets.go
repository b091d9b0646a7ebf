// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package meshdesc

import (
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobuffalo/packr"
	"github.com/pkg/errors"
)

// ErrUnknownPreset is returned for preset names not in the box
var ErrUnknownPreset = errors.New("unknown preset")

const presetExt = ".toml"

// PresetBox holds description files, one per preset, named <preset>.toml.
type PresetBox struct {
	box packr.Box
}

// DefaultPresets are the presets built into the binary
var DefaultPresets = &PresetBox{box: packr.NewBox("./presets")}

// NewPresetBox uses the description files in dir instead of the built-in
// ones. Relative paths are relative to the working directory.
func NewPresetBox(dir string) (*PresetBox, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "meshdesc.NewPresetBox()")
	}
	return &PresetBox{box: packr.NewBox(abs)}, nil
}

// Names lists the available presets, sorted.
func (p *PresetBox) Names() []string {
	var names []string
	for _, file := range p.box.List() {
		if path.Dir(file) != "." || !strings.HasSuffix(file, presetExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(file, presetExt))
	}
	sort.Strings(names)
	return names
}

// Get parses the named preset. The description's Name defaults to the
// preset name.
func (p *PresetBox) Get(name string) (*Description, error) {
	file := name + presetExt
	if !p.box.Has(file) {
		return nil, errors.Wrapf(ErrUnknownPreset, "meshdesc.PresetBox.Get(%s)", name)
	}
	data, err := p.box.Find(file)
	if err != nil {
		return nil, errors.Wrapf(err, "meshdesc.PresetBox.Get(%s)", name)
	}
	desc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "preset %s", name)
	}
	if desc.Name == "" {
		desc.Name = name
	}
	return desc, nil
}

// Presets lists the built-in presets.
func Presets() []string {
	return DefaultPresets.Names()
}

// Preset parses a built-in preset.
func Preset(name string) (*Description, error) {
	return DefaultPresets.Get(name)
}
