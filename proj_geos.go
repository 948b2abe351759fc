// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"geos"}, newGeos)
}

// geos is the Geostationary Satellite View projection, modeling the scan
// geometry of a satellite fixed at height h above the ellipsoid.
type geos struct {
	c                        *CRS
	ellips                   bool
	radiusP, radiusP2, radiusPInv2 float64
	radiusG, radiusG1, cc    float64
	flipAxis                 bool
}

func newGeos(c *CRS, params *ParamList) (Projection, error) {
	h, ok := params.Float("h")
	if !ok {
		return nil, newErr(KindMissingValue, "geos requires a +h (satellite height) parameter")
	}

	flipAxis := false
	if sweep, ok := params.String("sweep"); ok {
		switch sweep {
		case "y", "":
			flipAxis = false
		case "x":
			flipAxis = true
		default:
			return nil, newErr(KindInvalidParameterValue, "geos +sweep must be 'x' or 'y', got %q", sweep)
		}
	}

	radiusG1 := h / c.A
	if radiusG1 <= 0 || radiusG1 >= 1.0e10 {
		return nil, newErr(KindInvalidParameterValue, "geos: invalid value for +h")
	}
	radiusG := 1 + radiusG1
	cc := radiusG*radiusG - 1.0

	p := &geos{c: c, ellips: c.ES != 0, radiusG: radiusG, radiusG1: radiusG1, cc: cc, flipAxis: flipAxis}
	if p.ellips {
		p.radiusP = math.Sqrt(c.OneEs)
		p.radiusP2 = c.OneEs
		p.radiusPInv2 = c.ROneEs
	}
	return p, nil
}

func (*geos) IsLatLong() bool { return false }

func (p *geos) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *geos) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *geos) fwd(lam, phi float64) (float64, float64, error) {
	if p.ellips {
		return p.eFwd(lam, phi)
	}
	return p.sFwd(lam, phi)
}

func (p *geos) inv(x, y float64) (float64, float64, error) {
	if p.ellips {
		return p.eInv(x, y)
	}
	return p.sInv(x, y)
}

func (p *geos) eFwd(lam, phi float64) (float64, float64, error) {
	sinPhi, cosPhi := math.Sincos(math.Atan(p.radiusP2 * math.Tan(phi)))
	r := p.radiusP / math.Hypot(p.radiusP*cosPhi, sinPhi)
	vx := r * math.Cos(lam) * cosPhi
	vy := r * math.Sin(lam) * cosPhi
	vz := r * sinPhi

	if (p.radiusG-vx)*vx-vy*vy-vz*vz*p.radiusPInv2 < 0 {
		return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "geos: point not visible from satellite")
	}

	tmp := p.radiusG - vx
	if p.flipAxis {
		return p.radiusG1 * math.Atan(vy/math.Hypot(vz, tmp)), p.radiusG1 * math.Atan(vz/tmp), nil
	}
	return p.radiusG1 * math.Atan(vy/tmp), p.radiusG1 * math.Atan(vz/math.Hypot(vy, tmp)), nil
}

func (p *geos) eInv(x, y float64) (float64, float64, error) {
	vx := -1.0
	var vy, vz float64
	if p.flipAxis {
		vz = math.Tan(y / p.radiusG1)
		vy = math.Tan(x/p.radiusG1) * math.Hypot(1, vz)
	} else {
		vy = math.Tan(x / p.radiusG1)
		vz = math.Tan(y/p.radiusG1) * math.Hypot(1, vy)
	}

	a := vz / p.radiusP
	a = vy*vy + a*a + vx*vx
	b := 2.0 * p.radiusG * vx
	det := b*b - 4.0*a*p.cc
	if det < 0 {
		return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "geos inverse: determinant negative")
	}

	k := (-b - math.Sqrt(det)) / (2 * a)
	vx = p.radiusG + k*vx
	vy *= k
	vz *= k

	lam := math.Atan2(vy, vx)
	phi := math.Atan(p.radiusPInv2 * vz * math.Cos(lam) / vx)
	return lam, phi, nil
}

func (p *geos) sFwd(lam, phi float64) (float64, float64, error) {
	sinPhi, cosPhi := math.Sincos(phi)
	sinLam, coslam := math.Sincos(lam)
	vx := cosPhi * coslam
	vy := cosPhi * sinLam
	vz := sinPhi

	tmp := p.radiusG - vx
	if p.flipAxis {
		return p.radiusG1 * math.Atan(vy/math.Hypot(vz, tmp)), p.radiusG1 * math.Atan(vz/tmp), nil
	}
	return p.radiusG1 * math.Atan(vy/tmp), p.radiusG1 * math.Atan(vz/math.Hypot(vy, tmp)), nil
}

func (p *geos) sInv(x, y float64) (float64, float64, error) {
	vx := -1.0
	var vy, vz float64
	if p.flipAxis {
		vz = math.Tan(y / p.radiusG1)
		vy = math.Tan(x/p.radiusG1) * math.Sqrt(1+vz*vz)
	} else {
		vy = math.Tan(x / p.radiusG1)
		vz = math.Tan(y/p.radiusG1) * math.Sqrt(1+vy*vy)
	}

	a := vy*vy + vz*vz + vx*vx
	b := 2.0 * p.radiusG * vx
	det := b*b - 4.0*a*p.cc
	if det < 0 {
		return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "geos inverse: determinant negative")
	}

	k := (-b - math.Sqrt(det)) / (2 * a)
	vx = p.radiusG + k*vx
	vy *= k
	vz *= k

	lam := math.Atan2(vy, vx)
	phi := math.Atan(vz * math.Cos(lam) / vx)
	return lam, phi, nil
}
