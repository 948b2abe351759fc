// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

// enfn is the set of Clenshaw-style series coefficients used by mlfn/inv_mlfn
// to compute meridional distance on the ellipsoid, accurate to < 1e-5 m.
type enfnCoeffs [5]float64

const (
	mlC00 = 1.0
	mlC02 = 0.25
	mlC04 = 0.046875
	mlC06 = 0.01953125
	mlC08 = 0.01068115234375
	mlC22 = 0.75
	mlC44 = 0.46875
	mlC46 = 0.013020833333333334
	mlC48 = 0.007120768229166667
	mlC66 = 0.3645833333333333
	mlC68 = 0.005696614583333334
	mlC88 = 0.3076171875
)

func enfn(es float64) enfnCoeffs {
	t := es * es
	return enfnCoeffs{
		mlC00 - es*(mlC02+es*(mlC04+es*(mlC06+es*mlC08))),
		es * (mlC22 - es*(mlC04+es*(mlC06+es*mlC08))),
		t * (mlC44 - es*(mlC46+es*mlC48)),
		t * es * (mlC66 - es*mlC68),
		t * t * mlC88,
	}
}

func mlfn(phi, sphi, cphi float64, en enfnCoeffs) float64 {
	cphi *= sphi
	sphi *= sphi
	return en[0]*phi - cphi*(en[1]+sphi*(en[2]+sphi*(en[3]+sphi*en[4])))
}

// invMlfn inverts mlfn by Newton's method, <=10 iterations, tolerance 1e-11.
func invMlfn(arg, es float64, en enfnCoeffs) (float64, error) {
	const maxIter = 10
	const eps = 1e-11
	k := 1 / (1 - es)
	phi := arg
	for i := 0; i < maxIter; i++ {
		s := math.Sin(phi)
		t := 1 - es*s*s
		t = (mlfn(phi, s, math.Cos(phi), en) - arg) * (t * math.Sqrt(t)) * k
		phi -= t
		if math.Abs(t) < eps {
			return phi, nil
		}
	}
	return math.NaN(), newErr(KindInvMlfnConvergence, "inv_mlfn did not converge after 10 iterations")
}

// gaussParams holds the Gaussian-conformal-sphere mapping parameters used by
// sterea (Oblique Stereographic Alternative).
type gaussParams struct {
	c, k, e, ratexp float64
}

func srat(esinp, ratexp float64) float64 {
	return math.Pow((1-esinp)/(1+esinp), ratexp)
}

func gaussIni(e, phi0 float64) (gaussParams, float64, float64, error) {
	es := e * e
	sphi, cphi := math.Sincos(phi0)
	cphi *= cphi

	rc := math.Sqrt(1-es) / (1 - es*sphi*sphi)
	c := math.Sqrt(1 + es*cphi*cphi/(1-es))
	if c == 0 {
		return gaussParams{}, 0, 0, newErr(KindToleranceCondition, "gauss_ini: degenerate c")
	}

	chi, err := aasin(sphi / c)
	if err != nil {
		return gaussParams{}, 0, 0, err
	}
	ratexp := 0.5 * c * e
	k := math.Tan(0.5*chi+fortPi) / (math.Pow(math.Tan(0.5*phi0+fortPi), c) * srat(e*sphi, ratexp))
	return gaussParams{c: c, k: k, e: e, ratexp: ratexp}, chi, rc, nil
}

func gauss(lam, phi float64, g gaussParams) (float64, float64) {
	x := g.c * lam
	y := 2*math.Atan(g.k*math.Pow(math.Tan(0.5*phi+fortPi), g.c)*srat(g.e*math.Sin(phi), g.ratexp)) - halfPi
	return x, y
}

func invGauss(lam, phi float64, g gaussParams) (float64, float64, error) {
	const delTol = 1.0e-14
	const maxIter = 20
	num := math.Pow(math.Tan(0.5*phi+fortPi)/g.k, 1/g.c)
	for i := 0; i < maxIter; i++ {
		ePhi := 2*math.Atan(num*srat(g.e*math.Sin(phi), -0.5*g.e)) - halfPi
		conv := math.Abs(ePhi-phi) < delTol
		phi = ePhi
		if conv {
			return lam / g.c, phi, nil
		}
	}
	return 0, 0, newErr(KindInvMlfnConvergence, "inv_gauss did not converge after 20 iterations")
}

// etmercOrder is the degree of the Poder/Engsager trigonometric series used
// by the exact transverse Mercator (etmerc/utm).
const etmercOrder = 6

type etmercCoeffs [etmercOrder]float64

// gatg evaluates the Clenshaw recurrence used to go from the conformal
// (Gaussian) latitude to the geodetic one and back.
func gatg(c etmercCoeffs, b float64) float64 {
	cos2B := 2 * math.Cos(2*b)
	var h1, h2 float64
	h := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		h = -h2 + cos2B*h1 + c[i]
		h2 = h1
		h1 = h
	}
	return b + h*math.Sin(2*b)
}

// clens is the real Clenshaw summation used by etmerc's Zb computation.
func clens(a etmercCoeffs, argR float64) float64 {
	cosArgR := math.Cos(argR)
	r := 2 * cosArgR
	var hr1, hr2 float64
	hr := 0.0
	for i := len(a) - 1; i >= 0; i-- {
		hr = -hr2 + r*hr1 + a[i]
		hr2 = hr1
		hr1 = hr
	}
	return math.Sin(argR) * hr
}

// clensCplx is the complex Clenshaw summation used by etmerc's forward and
// inverse trigonometric series (utg/gtu coefficients).
func clensCplx(a etmercCoeffs, argR, argI float64) (float64, float64) {
	sinArgR, cosArgR := math.Sincos(argR)
	sinhArgI := math.Sinh(argI)
	coshArgI := math.Cosh(argI)

	r := 2 * cosArgR * coshArgI
	i := -2 * sinArgR * sinhArgI

	var hi1, hi2, hr1, hr2 float64
	hi := 0.0
	hr := 0.0
	for k := len(a) - 1; k >= 0; k-- {
		hr2 = hr1
		hi2 = hi1
		hr1 = hr
		hi1 = hi
		hi = -hi2 + i*hr1 + r*hi1
		hr = -hr2 + r*hr1 - i*hi1 + a[k]
	}

	r = sinArgR * coshArgI
	i = cosArgR * sinhArgI
	return r*hr - i*hi, r*hi + i*hr
}

// ssfn is the stereographic conformal-latitude helper shared by the
// ellipsoidal stere/ups forward transform.
func ssfn(phit, sinphi, e float64) float64 {
	sinphi *= e
	return math.Tan(0.5*(halfPi+phit)) * math.Pow((1-sinphi)/(1+sinphi), 0.5*e)
}
