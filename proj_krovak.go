// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"krovak"}, newKrovak)
}

const (
	krovakEps     = 1.0e-15
	krovakUQ      = 1.04216856380474  // DU(2, 59, 42, 42.69689)
	krovakS0      = 1.37008346281555  // latitude of pseudo standard parallel, 78d30'00"N
	krovakMaxIter = 100
)

// krovak is the Czech/Slovak national grid projection: an oblique
// conformal conic on a fixed Bessel ellipsoid, with the azimuth and pseudo
// standard parallel hardcoded rather than left as parameters.
type krovak struct {
	c                  *CRS
	e                  float64
	xfact, yfact       float64
	alpha, k, n, rho0  float64
	ad                 float64
	eastingNorthing    bool
}

func newKrovak(c *CRS, params *ParamList) (Projection, error) {
	// Bessel 1841 is fixed by the projection definition.
	setEllipsoid(c, 6377397.155, 0.006674372230614)

	if _, ok := params.String("lat_0"); !ok {
		c.Phi0 = 0.863937979737193
	}
	if _, ok := params.String("lon_0"); !ok {
		c.Lam0 = 0.7417649320975901 - 0.308341501185665
	}
	_, hasK := params.String("k")
	_, hasK0 := params.String("k_0")
	if !hasK && !hasK0 {
		c.K0 = 0.9999
	}

	eastingNorthing := true
	if czech, ok := params.Bool("czech"); ok && czech {
		eastingNorthing = false
	}

	e := c.E
	es := c.ES
	phi0 := c.Phi0
	sinphi0, cosphi0 := math.Sincos(phi0)

	alpha := math.Sqrt(1 + (es*math.Pow(cosphi0, 4))/(1-es))
	u0 := math.Asin(sinphi0 / alpha)
	g := math.Pow((1+e*sinphi0)/(1-e*sinphi0), alpha*e/2)

	tanHalfPhi0Plus4 := math.Tan(phi0/2 + fortPi)
	if tanHalfPhi0Plus4 == 0 {
		return nil, newErr(KindInputString, "krovak: lat_0 + pi/4 must not be zero")
	}

	n0 := math.Sqrt(1-es) / (1 - es*sinphi0*sinphi0)

	p := &krovak{
		c:               c,
		e:               e,
		xfact:           2 * c.X0 / c.A,
		yfact:           2 * c.Y0 / c.A,
		alpha:           alpha,
		k:               math.Tan(u0/2+fortPi) / math.Pow(tanHalfPhi0Plus4, alpha) * g,
		n:               math.Sin(krovakS0),
		rho0:            c.K0 * n0 / math.Tan(krovakS0),
		ad:              halfPi - krovakUQ,
		eastingNorthing: eastingNorthing,
	}
	return p, nil
}

func (*krovak) IsLatLong() bool { return false }

func (p *krovak) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *krovak) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *krovak) fwd(lam, phi float64) (float64, float64, error) {
	sinphi := math.Sin(phi)
	gfi := math.Pow((1+p.e*sinphi)/(1-p.e*sinphi), p.alpha*p.e/2)
	u := 2 * (math.Atan(p.k*math.Pow(math.Tan(phi/2+fortPi), p.alpha)/gfi) - fortPi)

	deltav := -lam * p.alpha
	sinAd, cosAd := math.Sincos(p.ad)
	sinU, cosU := math.Sincos(u)
	s, err := aasin(cosAd*sinU + sinAd*cosU*math.Cos(deltav))
	if err != nil {
		return 0, 0, err
	}
	cosS := math.Cos(s)

	if cosS < 1.0e-12 {
		return 0, 0, nil
	}

	eps, err := aasin(cosU * math.Sin(deltav) / cosS)
	if err != nil {
		return 0, 0, err
	}
	eps *= p.n
	rho := p.rho0 * math.Pow(math.Tan(krovakS0/2+fortPi), p.n) / math.Pow(math.Tan(s/2+fortPi), p.n)

	sinEps, cosEps := math.Sincos(eps)
	x, y := rho*sinEps, rho*cosEps
	if p.eastingNorthing {
		return -x - p.xfact, -y - p.yfact, nil
	}
	return x, y, nil
}

func (p *krovak) inv(x, y float64) (float64, float64, error) {
	if p.eastingNorthing {
		x, y = -y-p.xfact, -x-p.yfact
	} else {
		x, y = y, x
	}

	rho := math.Hypot(x, y)
	eps := math.Atan2(y, x)

	d := eps / math.Sin(krovakS0)
	var s float64
	if rho == 0 {
		s = halfPi
	} else {
		s = 2 * (math.Atan(math.Pow(p.rho0/rho, 1/p.n)*math.Tan(krovakS0/2+fortPi)) - fortPi)
	}

	sinAd, cosAd := math.Sincos(p.ad)
	sinS, cosS := math.Sincos(s)
	sinD, cosD := math.Sincos(d)

	u, err := aasin(cosAd*sinS - sinAd*cosS*cosD)
	if err != nil {
		return 0, 0, err
	}
	deltav, err := aasin(cosS * sinD / math.Cos(u))
	if err != nil {
		return 0, 0, err
	}
	lam := -deltav / p.alpha

	fi1 := u
	var phi float64
	for i := 0; i < krovakMaxIter; i++ {
		sinFi1 := math.Sin(fi1)
		phi = 2 * (math.Atan(math.Pow(p.k, -1/p.alpha)*
			math.Pow(math.Tan(u/2+fortPi), 1/p.alpha)*
			math.Pow((1+p.e*sinFi1)/(1-p.e*sinFi1), p.e/2)) - fortPi)
		if math.Abs(fi1-phi) < krovakEps {
			return lam, phi, nil
		}
		fi1 = phi
	}
	return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "krovak inverse did not converge")
}
