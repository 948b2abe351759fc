// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"aea"}, newAEA)
	registerProj([]string{"leac"}, newLEAC)
}

// aea is the Albers Equal-Area Conic projection, with one or two standard
// parallels. leac (Lambert Equal Area Conic) is the same engine with its
// second standard parallel pinned to a pole.
type aea struct {
	c                       *CRS
	e, oneEs                float64
	ec, n, n2, cc, dd, rho0 float64
}

func newAEA(c *CRS, params *ParamList) (Projection, error) {
	phi1, _ := params.Degree("lat_1")
	phi2, _ := params.Degree("lat_2")
	return initAEA(c, phi1, phi2)
}

func newLEAC(c *CRS, params *ParamList) (Projection, error) {
	phi1, _ := params.Degree("lat_1")
	phi2 := halfPi
	if south, _ := params.Bool("south"); south {
		phi2 = -halfPi
	}
	return initAEA(c, phi1, phi2)
}

func initAEA(c *CRS, phi1, phi2 float64) (Projection, error) {
	if math.Abs(phi1+phi2) < eps10 {
		return nil, newErr(KindProjErrConicLatEqual, "aea/leac standard parallels cancel each other out")
	}

	sinphi, cosphi := math.Sincos(phi1)
	n := sinphi
	secant := math.Abs(phi1-phi2) >= eps10

	p := &aea{c: c, e: c.E, oneEs: c.OneEs}

	if c.ES != 0 {
		m1 := msfn(sinphi, cosphi, c.ES)
		ml1 := qsfn(sinphi, c.E, c.OneEs)
		if math.IsInf(ml1, 0) {
			return nil, newErr(KindToleranceCondition, "aea: qsfn diverged at lat_1")
		}
		if secant {
			sinphi2, cosphi2 := math.Sincos(phi2)
			m2 := msfn(sinphi2, cosphi2, c.ES)
			ml2 := qsfn(sinphi2, c.E, c.OneEs)
			if math.IsInf(ml2, 0) || ml1 == ml2 {
				return nil, newErr(KindToleranceCondition, "aea: qsfn diverged or coincided at lat_2")
			}
			n = (m1*m1 - m2*m2) / (ml2 - ml1)
		}
		p.ec = 1 - 0.5*c.OneEs*math.Log((1-c.E)/(1+c.E))/c.E
		p.n = n
		p.cc = m1*m1 + n*ml1
		p.dd = 1 / n
		p.n2 = n + n
		p.rho0 = p.dd * math.Sqrt(p.cc-n*qsfn(math.Sin(c.Phi0), c.E, c.OneEs))
	} else {
		if secant {
			n = 0.5 * (n + math.Sin(phi2))
		}
		p.ec = 1
		p.n = n
		p.dd = 1 / n
		p.n2 = n + n
		p.cc = cosphi*cosphi + p.n2*sinphi
		p.rho0 = p.dd * math.Sqrt(p.cc-p.n2*math.Sin(c.Phi0))
	}
	return p, nil
}

func (p *aea) isEllipse() bool { return p.e != 0 }

func (*aea) IsLatLong() bool { return false }

func (p *aea) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *aea) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *aea) fwd(lam, phi float64) (float64, float64, error) {
	var rho float64
	if p.isEllipse() {
		rho = p.cc - p.n*qsfn(math.Sin(phi), p.e, p.oneEs)
	} else {
		rho = p.cc - p.n2*math.Sin(phi)
	}
	if rho < 0 {
		return 0, 0, newErr(KindToleranceCondition, "aea forward: negative radius")
	}
	rho = p.dd * math.Sqrt(rho)
	sinI, cosI := math.Sincos(lam * p.n)
	return rho * sinI, p.rho0 - rho*cosI, nil
}

func (p *aea) inv(x, y float64) (float64, float64, error) {
	xx, yy := x, p.rho0-y
	rho := math.Hypot(xx, yy)
	if rho == 0 {
		if p.n > 0 {
			return 0, halfPi, nil
		}
		return 0, -halfPi, nil
	}
	if p.n < 0 {
		rho = -rho
		xx = -xx
		yy = -yy
	}
	phiArg := rho / p.dd
	var phi float64
	if p.isEllipse() {
		phiArg = (p.cc - phiArg*phiArg) / p.n
		if math.Abs(p.ec-math.Abs(phiArg)) > eps7 {
			v, err := phi1Inv(phiArg, p.e, p.oneEs)
			if err != nil {
				return 0, 0, err
			}
			phi = v
		} else if phiArg < 0 {
			phi = -halfPi
		} else {
			phi = halfPi
		}
	} else {
		phiArg = (p.cc - phiArg*phiArg) / p.n2
		if math.Abs(phiArg) <= 1 {
			phi = math.Asin(phiArg)
		} else if phiArg < 0 {
			phi = -halfPi
		} else {
			phi = halfPi
		}
	}
	return math.Atan2(xx, yy) / p.n, phi, nil
}

// phi1Inv inverts qsfn by Newton's method for the Albers/Albers-family
// projections, 15 iterations, tolerance 1e-10.
func phi1Inv(qs, e, oneEs float64) (float64, error) {
	phi := math.Asin(0.5 * qs)
	if e < eps7 {
		return phi, nil
	}
	const niter = 15
	i := niter
	for i > 0 {
		sinphi, cosphi := math.Sincos(phi)
		con := e * sinphi
		com := 1 - con*con
		dphi := 0.5 * com * com / cosphi *
			(qs/oneEs - sinphi/com + 0.5/e*math.Log((1-con)/(1+con)))
		phi += dphi
		if math.Abs(dphi) <= eps10 {
			break
		}
		i--
	}
	if i == 0 {
		return 0, newErr(KindToleranceCondition, "phi1_inv did not converge after 15 iterations")
	}
	return phi, nil
}
