// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"stere"}, newStere)
	registerProj([]string{"ups"}, newUPS)
}

type stereMode int

const (
	stereSPole stereMode = iota
	stereNPole
	stereObliq
	stereEquit
)

// stere is the azimuthal Stereographic projection (both ellipsoidal and
// spherical forms), and the basis of Universal Polar Stereographic (ups).
type stere struct {
	c                 *CRS
	mode              stereMode
	sinx1, cosx1, akm1 float64
}

func newStere(c *CRS, params *ParamList) (Projection, error) {
	phits := halfPi
	if v, ok := params.Degree("lat_ts"); ok {
		phits = v
	}
	return initStere(c, phits)
}

func newUPS(c *CRS, params *ParamList) (Projection, error) {
	if south, _ := params.Bool("south"); south {
		c.Phi0 = -halfPi
	} else {
		c.Phi0 = halfPi
	}
	if c.ES == 0 {
		return nil, newErr(KindEllipsoidRequired, "ups requires an ellipsoid, not a sphere")
	}
	c.K0 = 0.994
	c.X0 = 2000000.0
	c.Y0 = 2000000.0
	c.Lam0 = 0
	return initStere(c, halfPi)
}

func initStere(c *CRS, phits float64) (Projection, error) {
	t := math.Abs(c.Phi0)
	var mode stereMode
	switch {
	case math.Abs(t-halfPi) < eps10:
		if c.Phi0 < 0 {
			mode = stereSPole
		} else {
			mode = stereNPole
		}
	case t > eps10:
		mode = stereObliq
	default:
		mode = stereEquit
	}

	phits = math.Abs(phits)
	var sinx1, cosx1, akm1 float64

	if c.ES != 0 {
		ecc := c.E
		switch mode {
		case stereNPole, stereSPole:
			if math.Abs(phits-halfPi) < eps10 {
				akm1 = 2 * c.K0 / math.Sqrt(math.Pow(1+ecc, 1+ecc)*math.Pow(1-ecc, 1-ecc))
			} else {
				s := math.Sin(phits)
				tt := s * ecc
				akm1 = math.Cos(phits) / tsfn(phits, s, ecc) / math.Sqrt(1-tt*tt)
			}
		default:
			tt := math.Sin(c.Phi0)
			x := 2*math.Atan(ssfn(c.Phi0, tt, ecc)) - halfPi
			sinx1, cosx1 = math.Sincos(x)
			tt *= ecc
			akm1 = 2 * c.K0 * math.Cos(c.Phi0) / math.Sqrt(1-tt*tt)
		}
	} else {
		switch mode {
		case stereEquit:
			akm1 = 2 * c.K0
		case stereObliq:
			sinx1, cosx1 = math.Sincos(c.Phi0)
			akm1 = 2 * c.K0
		default:
			if math.Abs(phits-halfPi) >= eps10 {
				akm1 = math.Cos(phits) / math.Tan(fortPi-0.5*phits)
			} else {
				akm1 = 2 * c.K0
			}
		}
	}

	return &stere{c: c, mode: mode, sinx1: sinx1, cosx1: cosx1, akm1: akm1}, nil
}

func (p *stere) IsLatLong() bool { return false }

func (p *stere) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *stere) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *stere) fwd(lam, phi float64) (float64, float64, error) {
	if p.c.ES != 0 {
		return p.eFwd(lam, phi)
	}
	return p.sFwd(lam, phi)
}

func (p *stere) inv(x, y float64) (float64, float64, error) {
	if p.c.ES != 0 {
		return p.eInv(x, y)
	}
	return p.sInv(x, y)
}

func (p *stere) eFwd(lam, phi float64) (float64, float64, error) {
	coslam := math.Cos(lam)
	sinlam := math.Sin(lam)
	sinphi := math.Sin(phi)

	var xx, yy float64
	switch p.mode {
	case stereObliq:
		xr := 2*math.Atan(ssfn(phi, sinphi, p.c.E)) - halfPi
		sinx, cosx := math.Sincos(xr)
		denom := p.cosx1 * (1 + p.sinx1*sinx + p.cosx1*cosx*coslam)
		if denom == 0 {
			return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "stere oblique: degenerate denominator")
		}
		a := p.akm1 / denom
		xx, yy = a*cosx, a*(p.cosx1*sinx-p.sinx1*cosx*coslam)
	case stereEquit:
		xr := 2*math.Atan(ssfn(phi, sinphi, p.c.E)) - halfPi
		sinx, cosx := math.Sincos(xr)
		denom := 1 + cosx*coslam
		if denom == 0 {
			return 0, 0, newErr(KindToleranceCondition, "stere equatorial: degenerate denominator")
		}
		a := p.akm1 / denom
		xx, yy = a*cosx, a*sinx
	case stereSPole:
		if math.Abs(math.Abs(phi)-halfPi) < 1e-15 {
			xx, yy = 0, 0
		} else {
			xr := p.akm1 * tsfn(-phi, -sinphi, p.c.E)
			xx, yy = xr, xr*coslam
		}
	default: // stereNPole
		if math.Abs(math.Abs(phi)-halfPi) < 1e-15 {
			xx, yy = 0, 0
		} else {
			xr := p.akm1 * tsfn(phi, sinphi, p.c.E)
			xx, yy = xr, -xr*coslam
		}
	}
	return xx * sinlam, yy, nil
}

func (p *stere) eInv(x, y float64) (float64, float64, error) {
	rho := math.Hypot(x, y)

	var halfpi, halfe, tp, phiL, xx, yy float64

	switch p.mode {
	case stereObliq, stereEquit:
		sinphi, cosphi := math.Sincos(2 * math.Atan2(rho*p.cosx1, p.akm1))
		if rho == 0 {
			v, err := aasin(cosphi * p.sinx1)
			if err != nil {
				return 0, 0, err
			}
			phiL = v
		} else {
			v, err := aasin(cosphi*p.sinx1 + y*sinphi*p.cosx1/rho)
			if err != nil {
				return 0, 0, err
			}
			phiL = v
		}
		tp = math.Tan(0.5 * (halfPi + phiL))
		halfpi = halfPi
		halfe = 0.5 * p.c.E
		xx, yy = x*sinphi, rho*p.cosx1*cosphi-y*p.sinx1*sinphi
	default:
		tp = -rho / p.akm1
		phiL = halfPi - 2*math.Atan(tp)
		halfpi = -halfPi
		halfe = -0.5 * p.c.E
		if p.mode == stereNPole {
			xx, yy = x, -y
		} else {
			xx, yy = x, y
		}
	}

	const niter = 8
	var lam, phi float64
	i := niter
	for i > 0 {
		sinphi := p.c.E * math.Sin(phiL)
		phi = 2*math.Atan(tp*math.Pow((1+sinphi)/(1-sinphi), halfe)) - halfpi
		if math.Abs(phiL-phi) < eps10 {
			if p.mode == stereSPole {
				phi = -phi
			}
			if xx == 0 && yy == 0 {
				lam = 0
			} else {
				lam = math.Atan2(xx, yy)
			}
			break
		}
		phiL = phi
		i--
	}
	if i == 0 {
		return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "stere inverse did not converge")
	}
	return lam, phi, nil
}

func (p *stere) sFwd(lam, phi float64) (float64, float64, error) {
	sinphi, cosphi := math.Sincos(phi)
	sinlam, coslam := math.Sincos(lam)

	switch p.mode {
	case stereEquit, stereObliq:
		var y, fac float64
		if p.mode == stereEquit {
			y, fac = 1+cosphi*coslam, sinphi
		} else {
			y = 1 + p.sinx1*sinphi + p.cosx1*cosphi*coslam
			fac = p.cosx1*sinphi - p.sinx1*cosphi*coslam
		}
		if y <= eps10 {
			return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "stere spherical: point antipodal to origin")
		}
		y = p.akm1 / y
		return y * cosphi * sinlam, y * fac, nil
	default:
		ph, cl := phi, coslam
		if p.mode == stereNPole {
			ph, cl = -phi, -coslam
		}
		if math.Abs(ph-halfPi) < 1.0e-8 {
			return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "stere spherical: point at opposite pole")
		}
		yv := p.akm1 * math.Tan(fortPi+0.5*ph)
		return yv * sinlam, yv * cl, nil
	}
}

func (p *stere) sInv(x, y float64) (float64, float64, error) {
	rh := math.Hypot(x, y)
	sinc, cosc := math.Sincos(2 * math.Atan(rh/p.akm1))

	var lam, phi float64
	switch p.mode {
	case stereEquit:
		if cosc != 0 || x != 0 {
			lam = math.Atan2(x*sinc, cosc*rh)
		}
		if math.Abs(rh) > eps10 {
			v, err := aasin(y * sinc / rh)
			if err != nil {
				return 0, 0, err
			}
			phi = v
		}
	case stereObliq:
		if math.Abs(rh) <= eps10 {
			phi = p.c.Phi0
		} else {
			v, err := aasin(cosc*p.sinx1 + y*sinc*p.cosx1/rh)
			if err != nil {
				return 0, 0, err
			}
			phi = v
		}
		cc := cosc - p.sinx1*math.Sin(phi)
		if cc != 0 || x != 0 {
			lam = math.Atan2(x*sinc*p.cosx1, cc*rh)
		}
	case stereNPole:
		if x == 0 && y == 0 {
			lam = 0
		} else {
			lam = math.Atan2(x, -y)
		}
		if math.Abs(rh) <= eps10 {
			phi = p.c.Phi0
		} else {
			v, err := aasin(cosc)
			if err != nil {
				return 0, 0, err
			}
			phi = v
		}
	default: // stereSPole
		if x == 0 && y == 0 {
			lam = 0
		} else {
			lam = math.Atan2(x, y)
		}
		if math.Abs(rh) <= eps10 {
			phi = p.c.Phi0
		} else {
			v, err := aasin(-cosc)
			if err != nil {
				return 0, 0, err
			}
			phi = v
		}
	}
	return lam, phi, nil
}
