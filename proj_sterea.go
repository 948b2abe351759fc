// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"sterea"}, newSterea)
}

// sterea is the Oblique Stereographic Alternative: project onto a Gaussian
// conformal sphere tangent at the origin latitude, then apply the spherical
// stereographic formulas.
type sterea struct {
	c                    *CRS
	k0, phic0            float64
	cosc0, sinc0, r2     float64
	gauss                gaussParams
}

func newSterea(c *CRS, params *ParamList) (Projection, error) {
	g, phic0, r, err := gaussIni(c.E, c.Phi0)
	if err != nil {
		return nil, err
	}
	sinc0, cosc0 := math.Sincos(phic0)
	return &sterea{c: c, k0: c.K0, phic0: phic0, cosc0: cosc0, sinc0: sinc0, r2: 2 * r, gauss: g}, nil
}

func (*sterea) IsLatLong() bool { return false }

func (p *sterea) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *sterea) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *sterea) fwd(lam, phi float64) (float64, float64, error) {
	lam, phi = gauss(lam, phi, p.gauss)
	sinc, cosc := math.Sincos(phi)
	cosl := math.Cos(lam)
	k := p.k0 * p.r2 / (1 + p.sinc0*sinc + p.cosc0*cosc*cosl)
	return k * cosc * math.Sin(lam), k * (p.cosc0*sinc - p.sinc0*cosc*cosl), nil
}

func (p *sterea) inv(x, y float64) (float64, float64, error) {
	x /= p.k0
	y /= p.k0
	rho := math.Hypot(x, y)
	if rho == 0 {
		return invGauss(0, p.phic0, p.gauss)
	}
	cc := 2 * math.Atan2(rho, p.r2)
	sinc, cosc := math.Sincos(cc)
	lam := math.Atan2(x*sinc, rho*p.cosc0*cosc-y*p.sinc0*sinc)
	phiArg, err := aasin(cosc*p.sinc0 + y*sinc*p.cosc0/rho)
	if err != nil {
		return 0, 0, err
	}
	return invGauss(lam, phiArg, p.gauss)
}
