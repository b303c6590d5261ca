// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"log/slog"

	"github.com/2dChan/r2voronoi/geom"
)

// SetLogger configures the logger for r2voronoi and its geom kernel.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Everything is logged at [slog.LevelDebug]: point and triangle counts per
// diagram, skipped sliver edges and duplicate points.
func SetLogger(l *slog.Logger) {
	geom.SetLogger(l)
}

func logger() *slog.Logger {
	return geom.Logger()
}
