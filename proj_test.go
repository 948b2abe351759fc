// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// vertex is a (lon, lat, z) <-> (x, y, z) test fixture: degrees in, metres
// out, the same shape proj4rs's own embedded test tables use.
type vertex struct {
	lon, lat, z float64
	x, y, zOut  float64
}

// checkForwardInverse builds the CRS from projString and checks every
// vertex's forward projection and, if the inverse also round-trips to the
// original lon/lat within tol degrees, its inverse too.
func checkForwardInverse(t *testing.T, projString string, verts []vertex, tol float64) {
	t.Helper()
	c, err := NewCRS(projString)
	if !assert.NoError(t, err) {
		return
	}
	for _, v := range verts {
		x, y, err := c.Forward(v.lon*d2r, v.lat*d2r)
		if !assert.NoError(t, err) {
			continue
		}
		assert.InDelta(t, v.x, x, tol, "forward x for (%g, %g)", v.lon, v.lat)
		assert.InDelta(t, v.y, y, tol, "forward y for (%g, %g)", v.lon, v.lat)

		lam, phi, err := c.Inverse(v.x, v.y)
		if !assert.NoError(t, err) {
			continue
		}
		assert.InDelta(t, v.lon, lam*r2d, tol, "inverse lon for (%g, %g)", v.x, v.y)
		assert.InDelta(t, v.lat, phi*r2d, tol, "inverse lat for (%g, %g)", v.x, v.y)
	}
}
