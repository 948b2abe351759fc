// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"lcc"}, newLCC)
}

// lcc is the Lambert Conformal Conic projection with one or two standard
// parallels.
type lcc struct {
	c            *CRS
	n, rho0, cc  float64
	ellips       bool
}

func newLCC(c *CRS, params *ParamList) (Projection, error) {
	phi1, _ := params.Degree("lat_1")
	phi2Val, ok := params.Degree("lat_2")
	if !ok {
		phi2Val = phi1
		if _, ok := params.String("lat_0"); !ok {
			c.Phi0 = phi1
		}
	}

	if math.Abs(phi1+phi2Val) < eps10 {
		return nil, newErr(KindProjErrConicLatEqual, "lcc standard parallels cancel each other out")
	}

	sinphi := math.Sin(phi1)
	cosphi := math.Cos(phi1)
	secant := math.Abs(phi1-phi2Val) >= eps10
	ellips := c.ES != 0

	var n, cc, rho0 float64
	if ellips {
		m1 := msfn(sinphi, cosphi, c.ES)
		ml1 := tsfn(phi1, sinphi, c.E)
		if secant {
			sinphi2 := math.Sin(phi2Val)
			n = math.Log(m1/msfn(sinphi2, math.Cos(phi2Val), c.ES)) /
				math.Log(ml1/tsfn(phi2Val, sinphi2, c.E))
		} else {
			n = sinphi
		}
		cc = m1 * math.Pow(ml1, -n) / n
		if math.Abs(math.Abs(c.Phi0)-halfPi) < eps10 {
			rho0 = 0
		} else {
			rho0 = cc * math.Pow(tsfn(c.Phi0, math.Sin(c.Phi0), c.E), n)
		}
	} else {
		if secant {
			n = math.Log(cosphi/math.Cos(phi2Val)) /
				math.Log(math.Tan(fortPi+0.5*phi2Val)/math.Tan(fortPi+0.5*phi1))
		} else {
			n = sinphi
		}
		cc = cosphi * math.Pow(math.Tan(fortPi+0.5*phi1), n) / n
		if math.Abs(math.Abs(c.Phi0)-halfPi) < eps10 {
			rho0 = 0
		} else {
			rho0 = cc * math.Pow(math.Tan(fortPi+0.5*c.Phi0), -n)
		}
	}

	return &lcc{c: c, n: n, rho0: rho0, cc: cc, ellips: ellips}, nil
}

func (*lcc) IsLatLong() bool { return false }

func (p *lcc) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *lcc) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *lcc) fwd(lam, phi float64) (float64, float64, error) {
	var rho float64
	if math.Abs(math.Abs(phi)-halfPi) < eps10 {
		if phi*p.n <= 0 {
			return 0, 0, newErr(KindToleranceCondition, "lcc forward: latitude/pole sign mismatch")
		}
	} else if p.ellips {
		rho = p.cc * math.Pow(tsfn(phi, math.Sin(phi), p.c.E), p.n)
	} else {
		rho = p.cc * math.Pow(math.Tan(fortPi+0.5*phi), -p.n)
	}
	lam *= p.n
	return p.c.K0 * (rho * math.Sin(lam)), p.c.K0 * (p.rho0 - rho*math.Cos(lam)), nil
}

func (p *lcc) inv(x, y float64) (float64, float64, error) {
	x /= p.c.K0
	y /= p.c.K0
	y = p.rho0 - y

	rho := math.Hypot(x, y)
	if rho == 0 {
		if p.n > 0 {
			return 0, halfPi, nil
		}
		return 0, -halfPi, nil
	}
	if p.n < 0 {
		rho = -rho
		x = -x
		y = -y
	}
	var phi float64
	var err error
	if p.ellips {
		phi, err = phi2(math.Pow(rho/p.cc, 1/p.n), p.c.E)
		if err != nil {
			return 0, 0, err
		}
	} else {
		phi = 2*math.Atan(math.Pow(p.cc/rho, 1/p.n)) - halfPi
	}
	lam := math.Atan2(x, y) / p.n
	return lam, phi, nil
}
