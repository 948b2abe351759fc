// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCRSBareWGS84Literal(t *testing.T) {
	c, err := NewCRS("WGS84")
	assert.NoError(t, err)
	assert.Equal(t, "longlat", c.ProjName)
	assert.InDelta(t, 6378137.0, c.A, 1e-6)
	assert.Equal(t, ToWGS84Zero, c.Datum.Kind)
}

func TestNewCRSMissingProjIsError(t *testing.T) {
	_, err := NewCRS("+ellps=GRS80")
	assert.Error(t, err)
	cerr, ok := err.(*CRSError)
	assert.True(t, ok)
	assert.Equal(t, KindMissingProj, cerr.Kind)
}

func TestNewCRSUnsupportedProj(t *testing.T) {
	_, err := NewCRS("+proj=bogus +ellps=GRS80")
	assert.Error(t, err)
	cerr, ok := err.(*CRSError)
	assert.True(t, ok)
	assert.Equal(t, KindUnsupportedProj, cerr.Kind)
}

func TestNewCRSDefaultsK0ToOne(t *testing.T) {
	c, err := NewCRS("+proj=tmerc +ellps=GRS80")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, c.K0)
}

func TestNewCRSRejectsNonPositiveK0(t *testing.T) {
	_, err := NewCRS("+proj=tmerc +ellps=GRS80 +k_0=0")
	assert.Error(t, err)
}

func TestNewCRSResolvesLon0Lat0X0Y0(t *testing.T) {
	c, err := NewCRS("+proj=tmerc +ellps=GRS80 +lon_0=9 +lat_0=45 +x_0=500000 +y_0=-100")
	assert.NoError(t, err)
	assert.InDelta(t, 9*d2r, c.Lam0, 1e-12)
	assert.InDelta(t, 45*d2r, c.Phi0, 1e-12)
	assert.Equal(t, 500000.0, c.X0)
	assert.Equal(t, -100.0, c.Y0)
}

func TestNewCRSValidAxisOverridesDefault(t *testing.T) {
	c, err := NewCRS("+proj=longlat +ellps=GRS80 +axis=wnu")
	assert.NoError(t, err)
	assert.Equal(t, "wnu", c.Axis)
}

func TestNewCRSInvalidAxisRejectsBadLength(t *testing.T) {
	_, err := NewCRS("+proj=longlat +ellps=GRS80 +axis=en")
	assert.Error(t, err)
	cerr, ok := err.(*CRSError)
	assert.True(t, ok)
	assert.Equal(t, KindInvalidAxis, cerr.Kind)
}

func TestNewCRSInvalidAxisRejectsRepeatedLetter(t *testing.T) {
	_, err := NewCRS("+proj=longlat +ellps=GRS80 +axis=eeu")
	assert.Error(t, err)
}

func TestNewCRSUnitsResolvesToMeterFromName(t *testing.T) {
	c, err := NewCRS("+proj=tmerc +ellps=GRS80 +units=us-ft")
	assert.NoError(t, err)
	assert.NotEqual(t, 1.0, c.ToMeter)
	assert.InDelta(t, 1.0, c.ToMeter*c.FromMeter, 1e-12)
}

func TestNewCRSToMeterExplicitScale(t *testing.T) {
	c, err := NewCRS("+proj=tmerc +ellps=GRS80 +to_meter=2")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, c.ToMeter)
	assert.Equal(t, 0.5, c.FromMeter)
}

func TestNewCRSGeocentProjUsesPassthrough(t *testing.T) {
	c, err := NewCRS("+proj=geocent +ellps=GRS80")
	assert.NoError(t, err)
	assert.True(t, c.IsGeocentric)
	x, y, err := c.Forward(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestNewCRSPrimeMeridianByName(t *testing.T) {
	c, err := NewCRS("+proj=longlat +ellps=GRS80 +pm=paris")
	assert.NoError(t, err)
	assert.NotEqual(t, 0.0, c.FromGreenwich)
}

func TestNewCRSDegenerateEllipsoidRejected(t *testing.T) {
	_, err := NewCRS("+proj=longlat +a=6378137 +es=1")
	assert.Error(t, err)
}
