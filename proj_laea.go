// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"laea"}, newLAEA)
}

type laeaMode int

const (
	laeaNPole laeaMode = iota
	laeaSPole
	laeaEquit
	laeaObliq
)

// laea is the Lambert Azimuthal Equal Area projection, ellipsoidal and
// spherical forms.
type laea struct {
	c                            *CRS
	ellips                       bool
	mode                         laeaMode
	e, oneEs, qp                 float64
	p0, p1, p2                   float64
	sinb1, cosb1, dd, rq, xmf, ymf float64
}

func newLAEA(c *CRS, params *ParamList) (Projection, error) {
	p := &laea{c: c, ellips: c.ES != 0}

	t := math.Abs(c.Phi0)
	switch {
	case math.Abs(t-halfPi) < eps10:
		if c.Phi0 < 0 {
			p.mode = laeaSPole
		} else {
			p.mode = laeaNPole
		}
	case t < eps10:
		p.mode = laeaEquit
	default:
		p.mode = laeaObliq
	}

	if p.ellips {
		p.e = c.E
		p.oneEs = c.OneEs
		p.qp = qsfn(1, p.e, p.oneEs)
		p.p0, p.p1, p.p2 = authset(c.ES)

		switch p.mode {
		case laeaEquit:
			p.rq = math.Sqrt(0.5 * p.qp)
			p.dd = 1 / p.rq
			p.xmf = 1
			p.ymf = 0.5 * p.qp
		case laeaObliq:
			sinphi, cosphi := math.Sincos(c.Phi0)
			p.rq = math.Sqrt(0.5 * p.qp)
			p.sinb1 = qsfn(sinphi, p.e, p.oneEs) / p.qp
			p.cosb1 = math.Sqrt(1 - p.sinb1*p.sinb1)
			p.dd = cosphi / (math.Sqrt(1-c.ES*sinphi*sinphi) * p.rq * p.cosb1)
			p.xmf = p.rq * p.dd
			p.ymf = p.rq / p.dd
		}
	} else {
		switch p.mode {
		case laeaObliq:
			p.sinb1, p.cosb1 = math.Sincos(c.Phi0)
		}
	}

	return p, nil
}

func (*laea) IsLatLong() bool { return false }

func (p *laea) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *laea) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *laea) fwd(lam, phi float64) (float64, float64, error) {
	if p.ellips {
		return p.eFwd(lam, phi)
	}
	return p.sFwd(lam, phi)
}

func (p *laea) inv(x, y float64) (float64, float64, error) {
	if p.ellips {
		return p.eInv(x, y)
	}
	return p.sInv(x, y)
}

func (p *laea) eFwd(lam, phi float64) (float64, float64, error) {
	sinlam, coslam := math.Sincos(lam)
	q := qsfn(math.Sin(phi), p.e, p.oneEs)

	switch p.mode {
	case laeaObliq:
		sinb := q / p.qp
		cosb := math.Sqrt(1 - sinb*sinb)
		b := 1 + p.sinb1*sinb + p.cosb1*cosb*coslam
		if math.Abs(b) < eps10 {
			return 0, 0, newErr(KindToleranceCondition, "laea oblique: degenerate denominator")
		}
		b = math.Sqrt(2 / b)
		return p.xmf * b * cosb * sinlam, p.ymf * b * (p.cosb1*sinb - p.sinb1*cosb*coslam), nil
	case laeaEquit:
		sinb := q / p.qp
		cosb := math.Sqrt(1 - sinb*sinb)
		b := 1 + cosb*coslam
		if math.Abs(b) < eps10 {
			return 0, 0, newErr(KindToleranceCondition, "laea equatorial: degenerate denominator")
		}
		b = math.Sqrt(2 / b)
		return p.xmf * b * cosb * sinlam, p.ymf * b * sinb, nil
	case laeaNPole:
		if math.Abs(halfPi+phi) < eps10 {
			return 0, 0, newErr(KindToleranceCondition, "laea: point at opposite pole")
		}
		qq := p.qp - q
		if qq >= 0 {
			b := math.Sqrt(qq)
			return b * sinlam, -b * coslam, nil
		}
		return 0, 0, nil
	default: // laeaSPole
		if math.Abs(phi-halfPi) < eps10 {
			return 0, 0, newErr(KindToleranceCondition, "laea: point at opposite pole")
		}
		qq := p.qp + q
		if qq >= 0 {
			b := math.Sqrt(qq)
			return b * sinlam, b * coslam, nil
		}
		return 0, 0, nil
	}
}

func (p *laea) eInv(x, y float64) (float64, float64, error) {
	var ab, xx, yy float64

	switch p.mode {
	case laeaEquit:
		xs, ys := x/p.dd, y*p.dd
		rho := math.Hypot(xs, ys)
		if rho < eps10 {
			return 0, p.c.Phi0, nil
		}
		sce, cce := math.Sincos(2 * math.Asin(0.5*rho/p.rq))
		ab = ys * sce / rho
		xx, yy = xs*sce, rho*cce
	case laeaObliq:
		xs, ys := x/p.dd, y*p.dd
		rho := math.Hypot(xs, ys)
		if rho < eps10 {
			return 0, p.c.Phi0, nil
		}
		sce, cce := math.Sincos(2 * math.Asin(0.5*rho/p.rq))
		ab = cce*p.sinb1 + ys*sce*p.cosb1/rho
		xx, yy = xs*sce, rho*p.cosb1*cce-ys*p.sinb1*sce
	default: // pole
		q := x*x + y*y
		if q == 0 {
			return 0, p.c.Phi0, nil
		}
		a := 1 - q/p.qp
		if p.mode == laeaNPole {
			ab, xx, yy = a, x, -y
		} else {
			ab, xx, yy = -a, x, y
		}
	}
	asinAB, err := aasin(ab)
	if err != nil {
		return 0, 0, err
	}
	return math.Atan2(xx, yy), authlat(asinAB, p.p0, p.p1, p.p2), nil
}

func (p *laea) sFwd(lam, phi float64) (float64, float64, error) {
	sinphi, cosphi := math.Sincos(phi)
	sinlam, coslam := math.Sincos(lam)

	switch p.mode {
	case laeaEquit:
		y := 1 + cosphi*coslam
		if y < eps10 {
			return 0, 0, newErr(KindToleranceCondition, "laea spherical: point antipodal to origin")
		}
		y = math.Sqrt(2 / y)
		return y * cosphi * sinlam, y * sinphi, nil
	case laeaObliq:
		y := 1 + p.sinb1*sinphi + p.cosb1*cosphi*coslam
		if y < eps10 {
			return 0, 0, newErr(KindToleranceCondition, "laea spherical: point antipodal to origin")
		}
		y = math.Sqrt(2 / y)
		return y * cosphi * sinlam, y * (p.cosb1*sinphi - p.sinb1*cosphi*coslam), nil
	default: // pole
		if math.Abs(phi+p.c.Phi0) < eps10 {
			return 0, 0, newErr(KindToleranceCondition, "laea spherical: point at opposite pole")
		}
		y := fortPi - phi*0.5
		if p.mode == laeaNPole {
			y = 2 * math.Sin(y)
			return y * sinlam, -y * coslam, nil
		}
		y = 2 * math.Cos(y)
		return y * sinlam, y * coslam, nil
	}
}

func (p *laea) sInv(x, y float64) (float64, float64, error) {
	rh := math.Hypot(x, y)
	phiArg := rh * 0.5
	if phiArg > 1 {
		return 0, 0, newErr(KindToleranceCondition, "laea spherical inverse: radius out of range")
	}
	phi := 2 * math.Asin(phiArg)

	var lam float64
	switch p.mode {
	case laeaEquit:
		sinz, cosz := math.Sincos(phi)
		if rh <= eps10 {
			phi = 0
		} else {
			v, err := aasin(y * sinz / rh)
			if err != nil {
				return 0, 0, err
			}
			phi = v
		}
		yy := cosz * rh
		if yy == 0 {
			lam = 0
		} else {
			lam = math.Atan2(x*sinz, yy)
		}
	case laeaObliq:
		sinz, cosz := math.Sincos(phi)
		if rh <= eps10 {
			phi = p.c.Phi0
		} else {
			v, err := aasin(cosz*p.sinb1 + y*sinz*p.cosb1/rh)
			if err != nil {
				return 0, 0, err
			}
			phi = v
		}
		yy := (cosz - math.Sin(phi)*p.sinb1) * rh
		if yy == 0 {
			lam = 0
		} else {
			lam = math.Atan2(x*sinz*p.cosb1, yy)
		}
	case laeaNPole:
		phi = halfPi - phi
		lam = math.Atan2(x, -y)
	default: // laeaSPole
		phi -= halfPi
		lam = math.Atan2(x, y)
	}
	return lam, phi, nil
}
