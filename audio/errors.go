// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat marks input that is not the mono 16-bit PCM profile.
	ErrFormat = errors.New("format error")
	// ErrIO marks failures at the filesystem boundary.
	ErrIO = errors.New("io error")

	ErrNotMono = errors.New("source is not mono")
)

// UnknownContainerError is returned when no decoder is registered for a
// file extension.
type UnknownContainerError struct {
	Ext string
}

func (e *UnknownContainerError) Error() string {
	if e.Ext == "" {
		return "unrecognized container: missing file extension"
	}

	return fmt.Sprintf("unrecognized container %q", e.Ext)
}

func (e *UnknownContainerError) Unwrap() error { return ErrFormat }
