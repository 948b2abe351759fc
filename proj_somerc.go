// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"somerc"}, newSomerc)
}

// somerc is the Swiss Oblique Mercator, the basis of the CH1903 national
// grid: a conformal sphere tangent at the origin latitude, mapped through
// a spherical Mercator and corrected for the sphere's obliquity.
type somerc struct {
	c                        *CRS
	e, roneEs                float64
	k, cc, hlfE, kr          float64
	cosp0, sinp0             float64
}

func newSomerc(c *CRS, params *ParamList) (Projection, error) {
	hlfE := 0.5 * c.E
	sinphi, cosphi := math.Sincos(c.Phi0)

	cp := cosphi * cosphi
	cc := math.Sqrt(1 + c.ES*cp*cp*c.ROneEs)
	sinp0 := sinphi / cc
	phip0, err := aasin(sinp0)
	if err != nil {
		return nil, err
	}
	cosp0 := math.Cos(phip0)
	sp := sinphi * c.E
	k := math.Log(math.Tan(fortPi+0.5*phip0)) -
		cc*(math.Log(math.Tan(fortPi+0.5*c.Phi0))-hlfE*math.Log((1+sp)/(1-sp)))
	kr := c.K0 * math.Sqrt(c.OneEs) / (1 - sp*sp)

	return &somerc{c: c, e: c.E, roneEs: c.ROneEs, k: k, cc: cc, hlfE: hlfE, kr: kr, cosp0: cosp0, sinp0: sinp0}, nil
}

func (*somerc) IsLatLong() bool { return false }

func (p *somerc) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *somerc) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *somerc) fwd(lam, phi float64) (float64, float64, error) {
	sp := p.e * math.Sin(phi)
	phip := 2*math.Atan(math.Exp(p.cc*(math.Log(math.Tan(fortPi+0.5*phi))-
		p.hlfE*math.Log((1+sp)/(1-sp)))+p.k)) - halfPi

	lamp := p.cc * lam
	cp := math.Cos(phip)
	phipp, err := aasin(p.cosp0*math.Sin(phip) - p.sinp0*cp*math.Cos(lamp))
	if err != nil {
		return 0, 0, err
	}
	lampp, err := aasin(cp * math.Sin(lamp) / math.Cos(phipp))
	if err != nil {
		return 0, 0, err
	}
	return p.kr * lampp, p.kr * math.Log(math.Tan(fortPi+0.5*phipp)), nil
}

func (p *somerc) inv(x, y float64) (float64, float64, error) {
	const niter = 6

	phipp := 2 * (math.Atan(math.Exp(y/p.kr)) - fortPi)
	lampp := x / p.kr
	cp := math.Cos(phipp)
	phip, err := aasin(p.cosp0*math.Sin(phipp) + p.sinp0*cp*math.Cos(lampp))
	if err != nil {
		return 0, 0, err
	}
	lamp, err := aasin(cp * math.Sin(lampp) / math.Cos(phip))
	if err != nil {
		return 0, 0, err
	}
	con := (p.k - math.Log(math.Tan(fortPi+0.5*phip))) / p.cc

	i := niter
	for i > 0 {
		esp := p.e * math.Sin(phip)
		delp := (con + math.Log(math.Tan(fortPi+0.5*phip)) -
			p.hlfE*math.Log((1+esp)/(1-esp))) * (1 - esp*esp) * math.Cos(phip) * p.roneEs
		phip -= delp
		if math.Abs(delp) < eps10 {
			break
		}
		i--
	}
	if i <= 0 {
		return 0, 0, newErr(KindToleranceCondition, "somerc inverse did not converge")
	}
	return lamp / p.cc, phip, nil
}
