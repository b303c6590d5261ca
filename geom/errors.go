// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import "github.com/pkg/errors"

// Constructors wrap one of these with context. Use errors.Is to classify.
var (
	// ErrInvalidArgument reports a bad scalar or a wrong number of points.
	ErrInvalidArgument = errors.New("geom: invalid argument")
	// ErrInvalidGeometry reports duplicate, colinear or zero-length input.
	ErrInvalidGeometry = errors.New("geom: invalid geometry")
)
