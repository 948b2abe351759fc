// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"moll"}, newMoll)
	registerProj([]string{"wag4"}, newWag4)
	registerProj([]string{"wag5"}, newWag5)
}

// moll is the Mollweide pseudocylindrical projection and its Wagner IV/V
// derivatives. All three operate on the sphere only: whatever ellipsoid was
// configured is collapsed to a sphere of the same semi-major axis.
type moll struct {
	c            *CRS
	cx, cy, cp float64
}

func newMoll(c *CRS, params *ParamList) (Projection, error) {
	return newMollLike(c, halfPi)
}

func newWag4(c *CRS, params *ParamList) (Projection, error) {
	return newMollLike(c, math.Pi/3)
}

func newWag5(c *CRS, params *ParamList) (Projection, error) {
	toSphere(c)
	return &moll{c: c, cx: 0.90977, cy: 1.65014, cp: 3.00896}, nil
}

func newMollLike(c *CRS, pp float64) (Projection, error) {
	toSphere(c)

	p2 := pp + pp
	sp := math.Sin(pp)
	cp := p2 + math.Sin(p2)
	r := math.Sqrt(2 * math.Pi * sp / cp)

	return &moll{c: c, cx: 2 * r / math.Pi, cy: r / sp, cp: cp}, nil
}

// toSphere drops any ellipsoidal eccentricity so a projection forced to
// sphere-only formulas still uses the configured semi-major axis.
func toSphere(c *CRS) {
	setEllipsoid(c, c.A, 0)
}

func (*moll) IsLatLong() bool { return false }

func (p *moll) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *moll) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *moll) fwd(lam, phi float64) (float64, float64, error) {
	const niter = 10
	const tol = 1e-7

	k := p.cp * math.Sin(phi)
	i := niter
	for i > 0 {
		v := (phi + math.Sin(phi) - k) / (1 + math.Cos(phi))
		phi -= v
		if math.Abs(v) < tol {
			break
		}
		i--
	}
	if i == 0 {
		phi = halfPi * sign(phi)
	} else {
		phi *= 0.5
	}
	return p.cx * lam * math.Cos(phi), p.cy * math.Sin(phi), nil
}

func (p *moll) inv(x, y float64) (float64, float64, error) {
	phi, err := aasin(y / p.cy)
	if err != nil {
		return 0, 0, err
	}
	lam := x / (p.cx * math.Cos(phi))
	if math.Abs(lam) >= math.Pi {
		return 0, 0, newErr(KindCoordinateOutOfRange, "moll/wag4/wag5: longitude out of range")
	}
	phi += phi
	phi, err = aasin((phi + math.Sin(phi)) / p.cp)
	if err != nil {
		return 0, 0, err
	}
	return lam, phi, nil
}
