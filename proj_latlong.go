// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

func init() {
	registerProj([]string{"latlong", "longlat", "latlon", "lonlat"}, newLngLat)
}

// lngLat is the identity "projection": geographic coordinates pass straight
// through the shared commonFwd/commonInv staging, scaled only by the
// ellipsoid radius (matching the teacher's LngLat).
type lngLat struct{ c *CRS }

func newLngLat(c *CRS, params *ParamList) (Projection, error) {
	c.X0, c.Y0 = 0, 0
	return lngLat{c: c}, nil
}

func (lngLat) IsLatLong() bool { return true }

func (p lngLat) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p lngLat) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p lngLat) fwd(lam, phi float64) (float64, float64, error) {
	return lam / p.c.A, phi / p.c.A, nil
}

func (p lngLat) inv(x, y float64) (float64, float64, error) {
	return x * p.c.A, y * p.c.A, nil
}
