// SPDX-License-Identifier: MIT
// Package: raintrap/profile
//
// errors.go — sentinel errors for the profile package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context with %w (see profileErrorf).
//   • Option constructors panic instead of returning these.

package profile

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative profile length.
var ErrBadSize = errors.New("profile: invalid size/length")

// ErrUnknownKind indicates ByKind was asked for a generator that does not exist.
var ErrUnknownKind = errors.New("profile: unknown kind")

// profileErrorf prefixes err with the generator name, keeping err for errors.Is.
func profileErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
