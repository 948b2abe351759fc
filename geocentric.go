// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

const (
	geocGenau    = 1.0e-12
	geocGenau2   = geocGenau * geocGenau
	geocMaxIter  = 30
	fracPi2Eps   = 1.001 * halfPi
)

// geodeticToGeocentric converts geodetic (lon, lat, height) to geocentric
// (X, Y, Z) on the ellipsoid a/es. Latitude a hair outside +-pi/2 is
// snapped to the pole; further out is rejected.
func geodeticToGeocentric(lon, lat, height, a, es float64) (x, y, z float64, err error) {
	switch {
	case lat < -halfPi && lat > -fracPi2Eps:
		lat = -halfPi
	case lat > halfPi && lat < fracPi2Eps:
		lat = halfPi
	case lat < -halfPi || lat > halfPi:
		return 0, 0, 0, newErr(KindLatitudeOutOfRange, "latitude %g out of range", lat)
	}

	if lon > math.Pi {
		lon -= twoPi
	}

	sinLat, cosLat := math.Sincos(lat)
	rn := a / math.Sqrt(1-es*sinLat*sinLat)
	return (rn + height) * cosLat * math.Cos(lon),
		(rn + height) * cosLat * math.Sin(lon),
		(rn*(1-es) + height) * sinLat,
		nil
}

// geocentricToGeodetic inverts geodeticToGeocentric via Wenzel's (1985)
// iterative algorithm: converges in 2-3 steps for |height| < 10km, up to
// ~15 for pathological inputs, bailing out after geocMaxIter regardless.
func geocentricToGeodetic(x, y, z, a, es, b float64) (lon, lat, height float64, err error) {
	d2 := x*x + y*y
	p := math.Sqrt(d2)
	rr := math.Sqrt(d2 + z*z)

	if p/a < geocGenau {
		if rr/a < geocGenau {
			return 0, halfPi, -b, nil
		}
		lon = 0
	} else {
		lon = math.Atan2(y, x)
	}

	ct := z / rr
	st := p / rr
	rx := 1 / math.Sqrt(1-es*(2-es)*st*st)
	cphi0 := st * (1 - es) * rx
	sphi0 := ct * rx

	var rk, rn, cphi, sphi, sdphi float64
	for iter := 1; ; iter++ {
		rn = a / math.Sqrt(1-es*sphi0*sphi0)
		height = p*cphi0 + z*sphi0 - rn*(1-es*sphi0*sphi0)

		if rn+height == 0 {
			return lon, 0, height, nil
		}

		rk = es * rn / (rn + height)
		rx = 1 / math.Sqrt(1-rk*(2-rk)*st*st)
		cphi = st * (1 - rk) * rx
		sphi = ct * rx
		sdphi = sphi*cphi0 - cphi*sphi0
		cphi0 = cphi
		sphi0 = sphi

		if sdphi*sdphi <= geocGenau2 || iter >= geocMaxIter {
			break
		}
	}

	return lon, math.Atan2(sphi, math.Abs(cphi)), height, nil
}
