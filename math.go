// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

const (
	sPi    float64 = 3.14159265359
	twoPi  float64 = math.Pi * 2
	halfPi float64 = math.Pi / 2
	fortPi float64 = math.Pi / 4
	d2r    float64 = math.Pi / 180
	r2d    float64 = 180 / math.Pi

	eps10 float64 = 1e-10
	eps12 float64 = 1e-12
	eps7  float64 = 1e-7

	// secToRad converts arc-seconds to radians, used by +towgs84 rotations.
	secToRad float64 = 4.84813681109536e-6

	epsln float64 = 1.0e-10
)

// msfn is the radius-of-curvature ratio used throughout the conformal and
// conic projections.
//
//	pj_msfn(double sinphi, double cosphi, double es) {
//		return (cosphi / sqrt (1. - es * sinphi * sinphi));
//	}
func msfn(sinphi, cosphi, es float64) float64 {
	return cosphi / math.Sqrt(1-es*sinphi*sinphi)
}

// tsfn is Snyder's (15-9): the isometric-latitude helper used by Mercator,
// Lambert conformal conic and polar stereographic.
//
//	pj_tsfn(double phi, double sinphi, double e) {
//		sinphi *= e;
//		return (tan (.5 * (HALFPI - phi)) /
//		   pow((1. - sinphi) / (1. + sinphi), .5 * e));
//	}
func tsfn(phi, sinphi, e float64) float64 {
	sinphi *= e
	return math.Tan(.5*(halfPi-phi)) / math.Pow((1-sinphi)/(1+sinphi), .5*e)
}

// phi2 inverts tsfn (Snyder 7-9..7-11) by fixed-point iteration, up to 15
// steps, tolerance 1e-10.
func phi2(ts, e float64) (float64, error) {
	eccnth := 0.5 * e
	phi := halfPi - 2*math.Atan(ts)
	var con, dphi float64
	for i := 0; i < 15; i++ {
		con = e * math.Sin(phi)
		dphi = halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= eps10 {
			return phi, nil
		}
	}
	return math.NaN(), newErr(KindNonInvPhi2Convergence, "phi2 did not converge after 15 iterations")
}

// qsfn is the authalic-latitude area function; returns +Inf where the
// denominator vanishes, matching proj4rs's qsfn.rs behavior.
func qsfn(sinphi, e, oneEs float64) float64 {
	if e < eps7 {
		return 2 * sinphi
	}
	con := e * sinphi
	div1 := 1 - con*con
	div2 := 1 + con
	if div1 < eps7 || div2 < eps7 {
		return math.Inf(1)
	}
	return oneEs * (sinphi/div1 - (1/(2*e))*math.Log((1-con)/div2))
}

// authset derives the series coefficients used by authlat to convert an
// authalic latitude back to geodetic latitude.
func authset(es float64) (p0, p1, p2 float64) {
	t := es
	p0 = t * (1. / 3.)
	t *= es
	p0 += t * (31. / 180.)
	p1 = t * (23. / 360.)
	t *= es
	p0 += t * (517. / 5040.)
	p1 += t * (251. / 3780.)
	p2 = t * (761. / 45360.)
	return
}

func authlat(beta, p0, p1, p2 float64) float64 {
	t := beta + beta
	return beta + p0*math.Sin(t) + p1*math.Sin(t+t) + p2*math.Sin(t+t+t)
}

// adjlon normalizes a longitude to (-pi, pi] using the proj4 hysteresis of
// SPI=pi to avoid date-line flip-flopping near the antimeridian.
func adjlon(lon float64) float64 {
	if math.Abs(lon) <= sPi {
		return lon
	}
	lon += math.Pi
	lon -= twoPi * math.Floor(lon/twoPi)
	lon -= math.Pi
	return lon
}

// adjLng is kept as an alias of adjlon for call sites ported verbatim from
// the original flat math.go.
func adjLng(x float64) float64 { return adjlon(x) }

func sign(x float64) float64 {
	if math.Signbit(x) {
		return -1
	}
	return 1
}

const (
	oneTol = 1.00000000000001
	atol   = 1e-50
)

// aasin is asin clamped to [-1,1] within a small tolerance, failing instead
// of silently producing NaN on a marginally out-of-range argument.
func aasin(v float64) (float64, error) {
	av := math.Abs(v)
	if av >= 1 {
		if av > oneTol {
			return 0, newErr(KindArgumentTooLarge, "asin argument %g out of range", v)
		}
		if v < 0 {
			return -halfPi, nil
		}
		return halfPi, nil
	}
	return math.Asin(v), nil
}

func aacos(v float64) (float64, error) {
	av := math.Abs(v)
	if av >= 1 {
		if av > oneTol {
			return 0, newErr(KindArgumentTooLarge, "acos argument %g out of range", v)
		}
		if v < 0 {
			return math.Pi, nil
		}
		return 0, nil
	}
	return math.Acos(v), nil
}

func asqrt(v float64) float64 {
	if v > 0 {
		return math.Sqrt(v)
	}
	return 0
}

func aatan2(n, d float64) float64 {
	if math.Abs(n) < atol && math.Abs(d) < atol {
		return 0
	}
	return math.Atan2(n, d)
}

// asinh is implemented via hypot to avoid overflow for large |x|, matching
// proj4rs's re-derivation.
func asinh(x float64) float64 {
	s := sign(x)
	return s * math.Log(math.Hypot(1, x)+math.Abs(x))
}
