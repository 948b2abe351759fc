// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

// wgs84SemiMajor, wgs84SemiMinor, wgs84ES are substituted for a nadgrid
// datum's own ellipsoid when building the Helmert stage: NTv2-style grids
// already shift onto a WGS84-ish frame, so the geocentric round trip around
// them uses WGS84 parameters regardless of what ellipsoid was configured.
const (
	wgs84SemiMajor = 6378137.0
	wgs84SemiMinor = 6356752.314
	wgs84ES        = 0.0066943799901413165
)

// PointTransformer is the single-point closure a Transform implementation
// feeds its coordinates through. Returning an error aborts the whole
// transform for that collection.
type PointTransformer func(x, y, z float64) (float64, float64, float64, error)

// Transform is implemented by any coordinate container (a single point, a
// slice of points, a strided buffer) that Transform can walk in place.
type Transform interface {
	TransformCoordinates(f PointTransformer) error
}

// Point is the simplest Transform: a single (x, y, z) coordinate.
type Point struct {
	X, Y, Z float64
}

func (p *Point) TransformCoordinates(f PointTransformer) error {
	x, y, z, err := f(p.X, p.Y, p.Z)
	if err != nil {
		return err
	}
	p.X, p.Y, p.Z = x, y, z
	return nil
}

// TransformCRS carries points from src's native coordinate system to dst's,
// staging through axis normalization, vertical units, the projection
// inverse, prime meridians, a WGS84-hub datum shift, and the projection
// forward — mirroring proj4's pj_transform pipeline.
func TransformCRS(src, dst *CRS, points Transform) error {
	if err := adjustAxes(src, DirInverse, points); err != nil {
		return err
	}
	if err := heightUnit(src, DirInverse, points); err != nil {
		return err
	}
	if err := projectedToGeographic(src, points); err != nil {
		return err
	}
	if err := primeMeridianStage(src, DirInverse, points); err != nil {
		return err
	}

	if err := datumTransformStage(src, dst, points); err != nil {
		return err
	}

	if err := primeMeridianStage(dst, DirForward, points); err != nil {
		return err
	}
	if err := geographicToProjected(dst, points); err != nil {
		return err
	}
	if err := heightUnit(dst, DirForward, points); err != nil {
		return err
	}
	return adjustAxes(dst, DirForward, points)
}

// projectedToGeographic runs the inverse leg: a CRS's native coordinates
// to geographic (lam, phi, height), in radians/metres.
func projectedToGeographic(c *CRS, points Transform) error {
	switch {
	case c.IsGeocentric:
		return geographicToCartesian(c, DirInverse, points)
	case c.IsLatLong():
		if !c.Geocentric {
			return nil
		}
		roneEs := c.ROneEs
		return points.TransformCoordinates(func(lam, phi, z float64) (float64, float64, float64, error) {
			return lam, math.Atan(roneEs * math.Tan(phi)), z, nil
		})
	default:
		// proj.Inverse is CRS.Inverse's delegate, which already runs the
		// full commonInv staging (unscale, descale, lam0, adjlon); calling
		// it directly here avoids re-applying that staging a second time.
		proj := c.proj
		return points.TransformCoordinates(func(x, y, z float64) (float64, float64, float64, error) {
			lam, phi, err := proj.Inverse(x, y)
			if err != nil {
				return 0, 0, 0, err
			}
			return lam, phi, z, nil
		})
	}
}

// geographicToProjected runs the forward leg: geographic (lam, phi, height)
// to a CRS's native coordinates.
func geographicToProjected(c *CRS, points Transform) error {
	switch {
	case c.IsGeocentric:
		return geographicToCartesian(c, DirForward, points)
	case c.IsLatLong():
		if !c.Geocentric {
			return nil
		}
		oneEs := c.OneEs
		return points.TransformCoordinates(func(lam, phi, z float64) (float64, float64, float64, error) {
			if math.Abs(math.Abs(phi)-halfPi) > eps12 {
				return lam, math.Atan(oneEs * math.Tan(phi)), z, nil
			}
			return lam, phi, z, nil
		})
	default:
		// proj.Forward is CRS.Forward's delegate, which already runs the
		// full commonFwd staging (domain check, pole clamp, lam0, adjlon,
		// scale, false easting/northing); calling it directly here avoids
		// re-applying that staging a second time.
		proj := c.proj
		return points.TransformCoordinates(func(lam, phi, z float64) (float64, float64, float64, error) {
			x, y, err := proj.Forward(lam, phi)
			if err != nil {
				return 0, 0, 0, err
			}
			return x, y, z, nil
		})
	}
}

// geographicToCartesian is the +proj=geocent leg: geodetic <-> geocentric
// XYZ, in the CRS's own to_meter units.
func geographicToCartesian(c *CRS, dir Direction, points Transform) error {
	a, b, es := c.A, c.A*math.Sqrt(c.OneEs), c.ES
	fac := c.ToMeter

	if fac != 1.0 {
		switch dir {
		case DirForward:
			return points.TransformCoordinates(func(x, y, z float64) (float64, float64, float64, error) {
				gx, gy, gz, err := geodeticToGeocentric(x, y, z, a, es)
				return gx / fac, gy / fac, gz / fac, err
			})
		default:
			return points.TransformCoordinates(func(x, y, z float64) (float64, float64, float64, error) {
				return geocentricToGeodetic(x*fac, y*fac, z*fac, a, es, b)
			})
		}
	}

	switch dir {
	case DirForward:
		return points.TransformCoordinates(func(x, y, z float64) (float64, float64, float64, error) {
			return geodeticToGeocentric(x, y, z, a, es)
		})
	default:
		return points.TransformCoordinates(func(x, y, z float64) (float64, float64, float64, error) {
			return geocentricToGeodetic(x, y, z, a, es, b)
		})
	}
}

// primeMeridianStage shifts longitude by a CRS's +pm offset from Greenwich.
func primeMeridianStage(c *CRS, dir Direction, points Transform) error {
	pm := c.FromGreenwich
	if pm == 0 || c.IsGeocentric || c.IsLatLong() {
		return nil
	}
	if dir == DirForward {
		pm = -pm
	}
	return points.TransformCoordinates(func(x, y, z float64) (float64, float64, float64, error) {
		return x + pm, y, z, nil
	})
}

// adjustAxes permutes x/y/z according to a CRS's +axis spec.
func adjustAxes(c *CRS, dir Direction, points Transform) error {
	if c.Axis == "enu" {
		return nil
	}
	if dir == DirForward {
		return denormalizeAxis(c.Axis, points)
	}
	return normalizeAxis(c.Axis, points)
}

func normalizeAxis(axis string, points Transform) error {
	return points.TransformCoordinates(func(x, y, z float64) (float64, float64, float64, error) {
		xo, yo, zo := x, y, z
		for i, axe := range axis {
			var value float64
			switch i {
			case 0:
				value = x
			case 1:
				value = y
			default:
				value = z
			}
			switch axe {
			case 'e':
				xo = value
			case 'w':
				xo = -value
			case 'n':
				yo = value
			case 's':
				yo = -value
			case 'u':
				zo = value
			case 'd':
				zo = -value
			}
		}
		return xo, yo, zo, nil
	})
}

func denormalizeAxis(axis string, points Transform) error {
	return points.TransformCoordinates(func(x, y, z float64) (float64, float64, float64, error) {
		var xo, yo, zo float64
		for i, axe := range axis {
			var value float64
			switch axe {
			case 'e':
				value = x
			case 'w':
				value = -x
			case 'n':
				value = y
			case 's':
				value = -y
			case 'u':
				value = z
			case 'd':
				value = -z
			}
			switch i {
			case 0:
				xo = value
			case 1:
				yo = value
			default:
				zo = value
			}
		}
		return xo, yo, zo, nil
	})
}

// heightUnit rescales the vertical (z) coordinate by a CRS's +vunits or
// +vto_meter factor.
func heightUnit(c *CRS, dir Direction, points Transform) error {
	var fac float64
	if dir == DirForward {
		fac = 1 / c.VToMeter
	} else {
		fac = c.VToMeter
	}
	if fac == 1.0 {
		return nil
	}
	return points.TransformCoordinates(func(x, y, z float64) (float64, float64, float64, error) {
		return x, y, z * fac, nil
	})
}

// datumTransformStage carries geographic points from src's datum to dst's,
// through WGS84 geocentric as a hub (or through a nadgrid catalog when
// either side uses one), mirroring proj4's two-hop Helmert strategy.
func datumTransformStage(src, dst *CRS, points Transform) error {
	if src.Datum.Kind == NoDatum || dst.Datum.Kind == NoDatum || identicalDatums(src, dst) {
		return nil
	}
	return points.TransformCoordinates(func(lam, phi, z float64) (float64, float64, float64, error) {
		x, y, zz, err := toWGS84(src, lam, phi, z)
		if err != nil {
			return 0, 0, 0, err
		}
		return fromWGS84(dst, x, y, zz)
	})
}

// identicalDatums decides whether src and dst need a WGS84 round trip at
// all: either both carry the same datum shift on the same ellipsoid (a
// equal, es within the GRS80/WGS84 tolerance of 5e-11), or both share
// exactly the same ellipsoid and neither carries towgs84 parameters.
func identicalDatums(src, dst *CRS) bool {
	if sameDatum(src.Datum, dst.Datum) && src.A == dst.A && math.Abs(src.ES-dst.ES) < 5e-11 {
		return true
	}
	return src.A == dst.A && src.ES == dst.ES && !hasWGS84Params(src.Datum) && !hasWGS84Params(dst.Datum)
}

func hasWGS84Params(d Datum) bool {
	switch d.Kind {
	case ToWGS84Zero, ToWGS84Three, ToWGS84Seven:
		return true
	default:
		return false
	}
}

// toWGS84 converts one CRS's geodetic (lam, phi, height) to WGS84
// geocentric XYZ, via that CRS's own ellipsoid and Helmert parameters (or
// via its nadgrid catalog when Kind == NadGrids).
func toWGS84(c *CRS, lam, phi, height float64) (float64, float64, float64, error) {
	a, es := c.A, c.ES
	if c.Datum.Kind == NadGrids {
		a, es = wgs84SemiMajor, wgs84ES
		var err error
		lam, phi, height, err = applyNadGrids(c, DirForward, lam, phi, height)
		if err != nil {
			return 0, 0, 0, err
		}
		return geodeticToGeocentric(lam, phi, height, a, es)
	}
	x, y, z, err := geodeticToGeocentric(lam, phi, height, a, es)
	if err != nil {
		return 0, 0, 0, err
	}
	gx, gy, gz := geocentricToWGS84(c.Datum, x, y, z)
	return gx, gy, gz, nil
}

// fromWGS84 is toWGS84's inverse: WGS84 geocentric XYZ to this CRS's own
// geodetic (lam, phi, height).
func fromWGS84(c *CRS, x, y, z float64) (float64, float64, float64, error) {
	a, es := c.A, c.ES
	b := a * math.Sqrt(c.OneEs)
	if c.Datum.Kind == NadGrids {
		a, es, b = wgs84SemiMajor, wgs84ES, wgs84SemiMinor
		lam, phi, height, err := geocentricToGeodetic(x, y, z, a, es, b)
		if err != nil {
			return 0, 0, 0, err
		}
		return applyNadGrids(c, DirInverse, lam, phi, height)
	}
	dx, dy, dz := wgs84ToGeocentric(c.Datum, x, y, z)
	return geocentricToGeodetic(dx, dy, dz, a, es, b)
}

// applyNadGrids shifts a geodetic point through the nearest-matching grid
// in c's catalog. dir == DirForward moves toward WGS84; DirInverse moves
// away from it, back toward c's local datum. When no grid applies and the
// list contains "@null", the point passes through unshifted.
func applyNadGrids(c *CRS, dir Direction, lam, phi, height float64) (float64, float64, float64, error) {
	names := c.Datum.GridNames
	if c.GridCatalog != nil {
		if g, ok := findGridInCatalog(c.GridCatalog, names, lam, phi, height); ok {
			return g.nadCvt(dir, lam, phi, height)
		}
	}
	for _, name := range names {
		if name == "@null" {
			return lam, phi, height, nil
		}
	}
	if c.GridCatalog == nil {
		return 0, 0, 0, newErr(KindNadGridNotAvailable, "CRS uses +nadgrids/+catalog but no grid catalog was attached")
	}
	return 0, 0, 0, newErr(KindNadGridNotAvailable, "no matching nadgrid found for point (%g, %g)", lam, phi)
}
