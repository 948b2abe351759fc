// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeosEllipsoidal(t *testing.T) {
	c, err := NewCRS("+proj=geos +lon_0=0 +h=35785782.858 +x_0=0 +y_0=0 +a=6378160 +b=6356775 +units=m +no_defs")
	if !assert.NoError(t, err) {
		return
	}
	checkGeos(t, c, 18.763481601401576, 9.204293875870595, 2000000.0, 1000000.0)
}

func TestGeosDefaultEllipsoid(t *testing.T) {
	c, err := NewCRS("+proj=geos +lon_0=0 +h=35785833.8833")
	if !assert.NoError(t, err) {
		return
	}
	checkGeos(t, c, 18.763554109081273, 9.204326881322723, 2000000.0, 1000000.0)
}

// checkGeos checks both quadrant signs, as proj4rs's own geos tests do,
// with a forward tolerance of 1e-8 (metres) and a loose inverse tolerance
// of 1e-2 (degrees) matching the original's own precision for this
// projection's inverse.
func checkGeos(t *testing.T, c *CRS, lon, lat, x, y float64) {
	t.Helper()
	for _, s := range []struct{ lat, y float64 }{{lat, y}, {-lat, -y}} {
		gotX, gotY, err := c.Forward(lon*d2r, s.lat*d2r)
		if !assert.NoError(t, err) {
			continue
		}
		assert.InDelta(t, x, gotX, 1e-8)
		assert.InDelta(t, s.y, gotY, 1e-8)

		gotLam, gotPhi, err := c.Inverse(x, s.y)
		if !assert.NoError(t, err) {
			continue
		}
		assert.InDelta(t, lon, gotLam*r2d, 1e-2)
		assert.InDelta(t, s.lat, gotPhi*r2d, 1e-2)
	}
}
