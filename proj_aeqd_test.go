// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// aeqd has no embedded numeric test vectors in the original source; each
// aspect (pole, equatorial, oblique) is exercised via a round trip instead.
func TestAeqdNorthPoleRoundTrip(t *testing.T) {
	c, err := NewCRS("+proj=aeqd +lat_0=90 +ellps=GRS80")
	assert.NoError(t, err)
	x, y, err := c.Forward(10*d2r, 60*d2r)
	assert.NoError(t, err)
	lam, phi, err := c.Inverse(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, 10*d2r, lam, 1e-9)
	assert.InDelta(t, 60*d2r, phi, 1e-9)
}

func TestAeqdSouthPoleRoundTrip(t *testing.T) {
	c, err := NewCRS("+proj=aeqd +lat_0=-90 +ellps=GRS80")
	assert.NoError(t, err)
	x, y, err := c.Forward(10*d2r, -60*d2r)
	assert.NoError(t, err)
	lam, phi, err := c.Inverse(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, 10*d2r, lam, 1e-9)
	assert.InDelta(t, -60*d2r, phi, 1e-9)
}

func TestAeqdEquatorialRoundTrip(t *testing.T) {
	c, err := NewCRS("+proj=aeqd +lat_0=0 +lon_0=0 +ellps=GRS80")
	assert.NoError(t, err)
	x, y, err := c.Forward(5*d2r, 10*d2r)
	assert.NoError(t, err)
	lam, phi, err := c.Inverse(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, 5*d2r, lam, 1e-6)
	assert.InDelta(t, 10*d2r, phi, 1e-6)
}

func TestAeqdObliqueRoundTrip(t *testing.T) {
	c, err := NewCRS("+proj=aeqd +lat_0=45 +lon_0=10 +ellps=GRS80")
	assert.NoError(t, err)
	x, y, err := c.Forward(12*d2r, 47*d2r)
	assert.NoError(t, err)
	lam, phi, err := c.Inverse(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, 12*d2r, lam, 1e-6)
	assert.InDelta(t, 47*d2r, phi, 1e-6)
}
