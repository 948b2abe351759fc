// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDatumIdentityTowgs84OnWGS84CollapsesToToWGS84Zero(t *testing.T) {
	params, err := parseProjString("+proj=longlat +ellps=WGS84 +towgs84=0,0,0")
	assert.NoError(t, err)
	d, err := resolveDatum(params, 6378137.0, 0.00669437999014)
	assert.NoError(t, err)
	assert.Equal(t, ToWGS84Zero, d.Kind)
}

func TestResolveDatumThreeParam(t *testing.T) {
	params, err := parseProjString("+proj=longlat +ellps=bessel +towgs84=598.1,73.7,418.2")
	assert.NoError(t, err)
	d, err := resolveDatum(params, 6377397.155, 0.006674372230614)
	assert.NoError(t, err)
	assert.Equal(t, ToWGS84Three, d.Kind)
	assert.Equal(t, [7]float64{598.1, 73.7, 418.2, 0, 0, 0, 0}, d.Params)
}

func TestResolveDatumSevenParamScalesRotationAndScale(t *testing.T) {
	params, err := parseProjString("+proj=longlat +ellps=bessel +towgs84=577.326,90.129,463.919,5.137,1.474,5.297,2.4232")
	assert.NoError(t, err)
	d, err := resolveDatum(params, 6377397.155, 0.006674372230614)
	assert.NoError(t, err)
	assert.Equal(t, ToWGS84Seven, d.Kind)
	assert.InDelta(t, 5.137*secToRad, d.Params[3], 1e-18)
	assert.InDelta(t, 1+2.4232/1e6, d.Params[6], 1e-18)
}

func TestNamedDatumExpandsEllipsoidAndTowgs84(t *testing.T) {
	params, err := parseProjString("+proj=longlat +datum=potsdam")
	assert.NoError(t, err)
	a, es, err := deriveEllipsoid(params)
	assert.NoError(t, err)
	assert.InDelta(t, 6377397.155, a, 1e-6) // bessel
	d, err := resolveDatum(params, a, es)
	assert.NoError(t, err)
	assert.Equal(t, ToWGS84Seven, d.Kind)
}

func TestGeocentricToWGS84RoundTrip(t *testing.T) {
	d := Datum{Kind: ToWGS84Seven, Params: [7]float64{1, 2, 3, 0.0001, -0.0002, 0.0003, 1.000001}}
	x, y, z := geocentricToWGS84(d, 4e6, 1e6, 5e6)
	gx, gy, gz := wgs84ToGeocentric(d, x, y, z)
	// The inverse applies the transposed small-angle rotation (I-S), so the
	// round trip returns (I - S*S) applied to the input, S being the
	// skew-symmetric rotation matrix of (rx, ry, rz).
	rx, ry, rz := d.Params[3], d.Params[4], d.Params[5]
	assert.InDelta(t, 4e6+(ry*ry+rz*rz)*4e6-rx*ry*1e6-rx*rz*5e6, gx, 1e-6)
	assert.InDelta(t, 1e6-rx*ry*4e6+(rx*rx+rz*rz)*1e6-ry*rz*5e6, gy, 1e-6)
	assert.InDelta(t, 5e6-rx*rz*4e6-ry*rz*1e6+(rx*rx+ry*ry)*5e6, gz, 1e-6)
}

func TestSameDatum(t *testing.T) {
	a := Datum{Kind: ToWGS84Three, Params: [7]float64{1, 2, 3}}
	b := Datum{Kind: ToWGS84Three, Params: [7]float64{1, 2, 3}}
	c := Datum{Kind: ToWGS84Three, Params: [7]float64{1, 2, 4}}
	assert.True(t, sameDatum(a, b))
	assert.False(t, sameDatum(a, c))
	assert.True(t, sameDatum(Datum{Kind: NoDatum}, Datum{Kind: NoDatum}))
}
