// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vkr implements the Vulkan side of the renderer: translation of
// generic gfx enums into Vulkan ones, the mesh layout builder producing the
// vertex input and input assembly pipeline state, and the pipeline step
// consuming it.
package vkr

import (
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
)

// package errors
var (
	// ErrInvalidArgument is returned for values that are out of range or
	// inconsistent with each other.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupported is returned for valid generic values that have no
	// Vulkan equivalent.
	ErrUnsupported = errors.New("unsupported by vulkan")
)

// vkError turns a non-successful vk.Result into an error carrying the
// name of the failing call.
func vkError(call string, res vk.Result) error {
	if err := vk.Error(res); err != nil {
		return errors.Wrap(err, call)
	}
	return nil
}
