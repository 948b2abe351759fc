// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"merc"}, newMercator)
}

// mercator is the standard (ellipsoidal or spherical) Mercator projection,
// grounded on the teacher's own Mercator implementation.
type mercator struct {
	c *CRS
}

func newMercator(c *CRS, params *ParamList) (Projection, error) {
	if phits, ok := params.Degree("lat_ts"); ok {
		phits = math.Abs(phits)
		if c.E != 0 {
			c.K0 = msfn(math.Sin(phits), math.Cos(phits), c.ES)
		} else {
			c.K0 = math.Cos(phits)
		}
	}
	return mercator{c: c}, nil
}

func (mercator) IsLatLong() bool { return false }

func (p mercator) Forward(lam, phi float64) (float64, float64, error) {
	if math.Abs(math.Abs(phi)-halfPi) <= epsln {
		return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "mercator is undefined at the pole")
	}
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p mercator) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p mercator) fwd(lam, phi float64) (float64, float64, error) {
	c := p.c
	if c.ES != 0 {
		return c.K0 * lam, -c.K0 * math.Log(tsfn(phi, math.Sin(phi), c.E)), nil
	}
	return c.K0 * lam, c.K0 * math.Log(math.Tan(fortPi+0.5*phi)), nil
}

func (p mercator) inv(x, y float64) (float64, float64, error) {
	c := p.c
	if c.ES != 0 {
		phi, err := phi2(math.Exp(-y/c.K0), c.E)
		return x / c.K0, phi, err
	}
	return x / c.K0, halfPi - 2*math.Atan(math.Exp(-y/c.K0)), nil
}
