// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar point sets for Voronoi diagrams.

package utils

import (
	"math/rand"

	"github.com/2dChan/r2voronoi/geom"
)

// GenerateRandomPoints generates cnt uniformly distributed points inside
// bounds, including its bottom and left edges.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, bounds geom.Rect, seed int64) []geom.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]geom.Point, cnt)

	for i := 0; i < cnt; i++ {
		sites[i] = geom.Pt(
			bounds.Left()+random.Float64()*bounds.Width(),
			bounds.Bottom()+random.Float64()*bounds.Height(),
		)
	}

	return sites
}
