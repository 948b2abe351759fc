// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"cea"}, newCEA)
	registerProj([]string{"mill"}, newMill)
}

// cea is the (Lambert) Cylindrical Equal Area projection, ellipsoidal and
// spherical forms, parameterized by a standard parallel +lat_ts.
type cea struct {
	c                  *CRS
	ellips             bool
	k0, e, oneEs, qp   float64
	p0, p1, p2         float64
}

func newCEA(c *CRS, params *ParamList) (Projection, error) {
	k0 := c.K0
	var t float64
	if v, ok := params.Degree("lat_ts"); ok {
		k0 = math.Cos(v)
		if k0 < 0 {
			return nil, newErr(KindInvalidParameterValue, "cea: |lat_ts| must be <= 90 degrees")
		}
		t = v
	}

	p := &cea{c: c, ellips: c.ES != 0, k0: k0}
	if p.ellips {
		sint := math.Sin(t)
		p.k0 = k0 / math.Sqrt(1-c.ES*sint*sint)
		p.e = c.E
		p.oneEs = c.OneEs
		p.qp = qsfn(1, c.E, c.OneEs)
		p.p0, p.p1, p.p2 = authset(c.ES)
	}
	return p, nil
}

func (*cea) IsLatLong() bool { return false }

func (p *cea) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *cea) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *cea) fwd(lam, phi float64) (float64, float64, error) {
	if p.ellips {
		return p.k0 * lam, 0.5 * qsfn(math.Sin(phi), p.e, p.oneEs) / p.k0, nil
	}
	return p.k0 * lam, math.Sin(phi) / p.k0, nil
}

func (p *cea) inv(x, y float64) (float64, float64, error) {
	if p.ellips {
		v, err := aasin(2 * y * p.k0 / p.qp)
		if err != nil {
			return 0, 0, err
		}
		return x / p.k0, authlat(v, p.p0, p.p1, p.p2), nil
	}
	yy := y * p.k0
	t := math.Abs(yy)
	if t-eps10 > 1 {
		return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "cea: point outside projection domain")
	}
	var phi float64
	if t >= 1 {
		if yy < 0 {
			phi = -halfPi
		} else {
			phi = halfPi
		}
	} else {
		phi = math.Asin(yy)
	}
	return x / p.k0, phi, nil
}

// mill is the Miller Cylindrical projection, a sphere-only fixed formula.
type mill struct {
	c *CRS
}

func newMill(c *CRS, params *ParamList) (Projection, error) {
	toSphere(c)
	return &mill{c: c}, nil
}

func (*mill) IsLatLong() bool { return false }

func (p *mill) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *mill) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *mill) fwd(lam, phi float64) (float64, float64, error) {
	return lam, math.Log(math.Tan(fortPi+phi*0.4)) * 1.25, nil
}

func (p *mill) inv(x, y float64) (float64, float64, error) {
	return x, 2.5 * (math.Atan(math.Exp(0.8*y)) - fortPi), nil
}
