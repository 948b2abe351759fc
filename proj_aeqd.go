// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"aeqd"}, newAeqd)
}

type aeqdMode int

const (
	aeqdNPole aeqdMode = iota
	aeqdSPole
	aeqdEquit
	aeqdObliq
)

// aeqd is the Azimuthal Equidistant projection. The polar aspect has an
// exact closed form on both sphere and ellipsoid (via the meridional-arc
// series in mathprim.go); the oblique/equatorial aspect uses the spherical
// formulas, scaled by a, on both sphere and ellipsoid: no ellipsoidal
// geodesic solution is computed for it.
type aeqd struct {
	c                    *CRS
	mode                 aeqdMode
	ellips               bool
	sinph0, cosph0       float64
	es                   float64
	en                   enfnCoeffs
	mp                   float64
}

func newAeqd(c *CRS, params *ParamList) (Projection, error) {
	phi0 := c.Phi0
	t := math.Abs(phi0)

	var mode aeqdMode
	var sinph0, cosph0 float64
	switch {
	case math.Abs(t-halfPi) < eps10:
		cosph0 = 0
		if phi0 < 0 {
			sinph0 = -1
			mode = aeqdSPole
		} else {
			sinph0 = 1
			mode = aeqdNPole
		}
	case t < eps10:
		sinph0, cosph0 = 0, 1
		mode = aeqdEquit
	default:
		sinph0, cosph0 = math.Sincos(phi0)
		mode = aeqdObliq
	}

	p := &aeqd{c: c, mode: mode, ellips: c.ES != 0, sinph0: sinph0, cosph0: cosph0, es: c.ES}
	if p.ellips && (mode == aeqdNPole || mode == aeqdSPole) {
		p.en = enfn(c.ES)
		if mode == aeqdNPole {
			p.mp = mlfn(halfPi, 1, 0, p.en)
		} else {
			p.mp = mlfn(-halfPi, -1, 0, p.en)
		}
	}
	return p, nil
}

func (*aeqd) IsLatLong() bool { return false }

func (p *aeqd) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *aeqd) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *aeqd) fwd(lam, phi float64) (float64, float64, error) {
	if p.ellips && (p.mode == aeqdNPole || p.mode == aeqdSPole) {
		return p.polarEFwd(lam, phi)
	}
	if p.mode == aeqdNPole || p.mode == aeqdSPole {
		return p.polarSFwd(lam, phi)
	}
	return p.obliqFwd(lam, phi)
}

func (p *aeqd) inv(x, y float64) (float64, float64, error) {
	if p.ellips && (p.mode == aeqdNPole || p.mode == aeqdSPole) {
		return p.polarEInv(x, y)
	}
	if p.mode == aeqdNPole || p.mode == aeqdSPole {
		return p.polarSInv(x, y)
	}
	return p.obliqInv(x, y)
}

func (p *aeqd) polarEFwd(lam, phi float64) (float64, float64, error) {
	sinphi, cosphi := math.Sincos(phi)
	coslam := math.Cos(lam)
	var rho float64
	if p.mode == aeqdNPole {
		coslam = -coslam
		rho = p.mp - mlfn(phi, sinphi, cosphi, p.en)
	} else {
		rho = math.Abs(p.mp - mlfn(phi, sinphi, cosphi, p.en))
	}
	return rho * math.Sin(lam), rho * coslam, nil
}

func (p *aeqd) polarEInv(x, y float64) (float64, float64, error) {
	rho := math.Hypot(x, y)
	var mu float64
	if p.mode == aeqdNPole {
		y = -y
		mu = p.mp - rho
	} else {
		mu = p.mp + rho
	}
	phi, err := invMlfn(mu, p.es, p.en)
	if err != nil {
		return 0, 0, err
	}
	lam := 0.0
	if rho != 0 || p.mode == aeqdSPole {
		lam = math.Atan2(x, y)
	}
	return lam, phi, nil
}

func (p *aeqd) polarSFwd(lam, phi float64) (float64, float64, error) {
	var rho float64
	if p.mode == aeqdNPole {
		rho = halfPi - phi
	} else {
		rho = halfPi + phi
	}
	coslam := math.Cos(lam)
	if p.mode == aeqdNPole {
		coslam = -coslam
	}
	return rho * math.Sin(lam), rho * coslam, nil
}

func (p *aeqd) polarSInv(x, y float64) (float64, float64, error) {
	rho := math.Hypot(x, y)
	var phi float64
	if p.mode == aeqdNPole {
		phi = halfPi - rho
		y = -y
	} else {
		phi = rho - halfPi
	}
	lam := 0.0
	if rho != 0 {
		lam = math.Atan2(x, y)
	}
	return lam, phi, nil
}

func (p *aeqd) obliqFwd(lam, phi float64) (float64, float64, error) {
	sinphi, cosphi := math.Sincos(phi)
	coslam := math.Cos(lam)
	cosC := p.sinph0*sinphi + p.cosph0*cosphi*coslam
	if math.Abs(math.Abs(cosC)-1) < eps10 {
		if cosC < 0 {
			return 0, 0, newErr(KindToleranceCondition, "aeqd: point antipodal to origin")
		}
		return 0, 0, nil
	}
	c, err := aacos(cosC)
	if err != nil {
		return 0, 0, err
	}
	k := c / math.Sin(c)
	return k * cosphi * math.Sin(lam), k * (p.cosph0*sinphi - p.sinph0*cosphi*coslam), nil
}

func (p *aeqd) obliqInv(x, y float64) (float64, float64, error) {
	rho := math.Hypot(x, y)
	if rho < eps10 {
		return 0, p.c.Phi0, nil
	}
	c := rho
	sinC, cosC := math.Sincos(c)
	phi, err := aasin(cosC*p.sinph0 + y*sinC*p.cosph0/rho)
	if err != nil {
		return 0, 0, err
	}
	lam := math.Atan2(x*sinC, rho*p.cosph0*cosC-y*p.sinph0*sinC)
	return lam, phi, nil
}
