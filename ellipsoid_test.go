// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveEllipsoidNamed(t *testing.T) {
	params, err := parseProjString("+proj=longlat +ellps=GRS80")
	assert.NoError(t, err)
	a, es, err := deriveEllipsoid(params)
	assert.NoError(t, err)
	assert.InDelta(t, 6378137.0, a, 1e-6)
	assert.InDelta(t, 0.00669438002290, es, 1e-12)
}

func TestDeriveEllipsoidRadiusIsSphere(t *testing.T) {
	params, err := parseProjString("+proj=longlat +R=6400000")
	assert.NoError(t, err)
	a, es, err := deriveEllipsoid(params)
	assert.NoError(t, err)
	assert.InDelta(t, 6400000.0, a, 1e-6)
	assert.Equal(t, 0.0, es)
}

func TestDeriveEllipsoidExplicitAB(t *testing.T) {
	params, err := parseProjString("+proj=longlat +a=6378137 +b=6356752.314245")
	assert.NoError(t, err)
	a, es, err := deriveEllipsoid(params)
	assert.NoError(t, err)
	assert.InDelta(t, 6378137.0, a, 1e-6)
	assert.InDelta(t, 0.00669438, es, 1e-8)
}

func TestSetEllipsoidOverridesShapeFields(t *testing.T) {
	c, err := NewCRS("+proj=longlat +ellps=WGS84")
	assert.NoError(t, err)
	setEllipsoid(c, 6377397.155, 0.006674372230614)
	assert.InDelta(t, 6377397.155, c.A, 1e-6)
	assert.InDelta(t, 0.006674372230614, c.ES, 1e-15)
	assert.InDelta(t, 1/c.A, c.RA, 1e-18)
	assert.InDelta(t, 1-c.ES, c.OneEs, 1e-15)
}
