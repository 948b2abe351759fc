// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMercatorEllipsoidalRoundTrip(t *testing.T) {
	c, err := NewCRS("+proj=merc +ellps=GRS80")
	assert.NoError(t, err)
	x, y, err := c.Forward(2*d2r, 35*d2r)
	assert.NoError(t, err)
	lam, phi, err := c.Inverse(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, 2*d2r, lam, 1e-9)
	assert.InDelta(t, 35*d2r, phi, 1e-9)
}

func TestMercatorSphericalWithStandardParallel(t *testing.T) {
	c, err := NewCRS("+proj=merc +R=6400000 +lat_ts=30")
	assert.NoError(t, err)
	x, y, err := c.Forward(1*d2r, 10*d2r)
	assert.NoError(t, err)
	lam, phi, err := c.Inverse(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, 1*d2r, lam, 1e-9)
	assert.InDelta(t, 10*d2r, phi, 1e-9)
}

func TestMercatorUndefinedAtPole(t *testing.T) {
	c, err := NewCRS("+proj=merc +ellps=GRS80")
	assert.NoError(t, err)
	_, _, err = c.Forward(0, halfPi)
	assert.Error(t, err)
}

func TestEquirectangularRoundTrip(t *testing.T) {
	c, err := NewCRS("+proj=eqc +lat_ts=30 +ellps=GRS80")
	assert.NoError(t, err)
	x, y, err := c.Forward(5*d2r, 20*d2r)
	assert.NoError(t, err)
	lam, phi, err := c.Inverse(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, 5*d2r, lam, 1e-9)
	assert.InDelta(t, 20*d2r, phi, 1e-9)
}

func TestLngLatIsIdentityUpToRadiusScale(t *testing.T) {
	c, err := NewCRS("+proj=longlat +ellps=GRS80")
	assert.NoError(t, err)
	assert.True(t, c.IsLatLong())
	x, y, err := c.Forward(0.4, 0.2)
	assert.NoError(t, err)
	lam, phi, err := c.Inverse(x, y)
	assert.NoError(t, err)
	assert.InDelta(t, 0.4, lam, 1e-12)
	assert.InDelta(t, 0.2, phi, 1e-12)
}
