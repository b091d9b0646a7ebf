// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
)

// Validate checks the cross references the builder itself doesn't:
// bindings are unique, every attribute references an existing binding,
// attribute locations are unique, attributes of known formats fit into the
// stride of their binding and divisors only reference instanced bindings.
// Errors wrap ErrInvalidArgument.
func (l *MeshLayout) Validate() error {
	if err := l.Err(); err != nil {
		return err
	}

	bindings := make(map[uint32]vk.VertexInputBindingDescription, len(l.Bindings()))
	for _, b := range l.Bindings() {
		if _, ok := bindings[b.Binding]; ok {
			return errors.Wrapf(ErrInvalidArgument, "vkr.MeshLayout: binding %d added more than once", b.Binding)
		}
		bindings[b.Binding] = b
	}

	locations := make(map[uint32]struct{}, len(l.Attributes()))
	for _, a := range l.Attributes() {
		if _, ok := locations[a.Location]; ok {
			return errors.Wrapf(ErrInvalidArgument, "vkr.MeshLayout: location %d used by more than one attribute", a.Location)
		}
		locations[a.Location] = struct{}{}

		b, ok := bindings[a.Binding]
		if !ok {
			return errors.Wrapf(ErrInvalidArgument, "vkr.MeshLayout: attribute at location %d references missing binding %d", a.Location, a.Binding)
		}

		// zero-sized formats are ones we don't know, leave them to the driver
		size := uint32(VertexFormat(a.Format).Size())
		if size != 0 && b.Stride != 0 && (a.Offset > b.Stride || size > b.Stride-a.Offset) {
			return errors.Wrapf(ErrInvalidArgument, "vkr.MeshLayout: attribute at location %d with %d bytes at offset %d doesn't fit into stride %d of binding %d",
				a.Location, size, a.Offset, b.Stride, b.Binding)
		}
	}

	for _, d := range l.Divisors() {
		if b, ok := bindings[d.Binding]; !ok || b.InputRate != vk.VertexInputRateInstance {
			return errors.Wrapf(ErrInvalidArgument, "vkr.MeshLayout: divisor references binding %d which is not instanced", d.Binding)
		}
	}
	return nil
}
