// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"math"
	"strings"
)

// Direction selects which way a two-way conversion (a projection, a
// nadgrid shift, an axis swap) runs.
type Direction int

const (
	DirForward Direction = iota
	DirInverse
)

// translator is the low-level (lam, phi) <-> (x, y) closure each Projection
// implementation supplies to the shared CRS.commonFwd/commonInv staging.
type translator func(float64, float64) (float64, float64, error)

// Projection is the per-method forward/inverse pair. Each of the ~22
// supported +proj values gets its own implementation; CRS.Forward/Inverse
// delegate to whichever one NewCRS resolved.
type Projection interface {
	Forward(lam, phi float64) (x, y float64, err error)
	Inverse(x, y float64) (lam, phi float64, err error)
	IsLatLong() bool
}

// projFactory builds a Projection for one +proj method name against an
// already-configured CRS, consuming any method-specific parameters
// (+lat_1, +lat_ts, +zone, ...) from params.
type projFactory func(c *CRS, params *ParamList) (Projection, error)

var projRegistry = map[string]projFactory{}

func registerProj(names []string, f projFactory) {
	for _, n := range names {
		projRegistry[n] = f
	}
}

// CRS is a fully-resolved coordinate reference system: an ellipsoid, a
// datum, a prime meridian, units, axis order, and the projection method
// that maps geographic <-> projected coordinates.
type CRS struct {
	Source string // the proj-string this CRS was built from, for diagnostics

	ProjName string
	proj     Projection

	Axis string // 3-letter axis order, e.g. "enu"

	A, ES, E, RA   float64
	OneEs, ROneEs  float64
	AOrig, ESOrig  float64

	Datum Datum

	Lam0, Phi0, K0 float64
	X0, Y0         float64

	Geocentric bool // +geoc
	OverRange  bool // +over: skip longitude wrap-around

	LongWrapSet    bool
	LongWrapCenter float64

	ToMeter, FromMeter   float64
	VToMeter, VFromMeter float64

	FromGreenwich float64

	IsGeocentric bool // +proj=geocent: skip the projection stage entirely

	GridCatalog GridSource // optional source of NTv2-style grids for +nadgrids/+catalog datums
}

// SetGridCatalog attaches a grid source (Catalog or CatalogMT) this CRS's
// datum shift will consult when its Kind is NadGrids. Transform returns
// KindNadGridNotAvailable if a NadGrids datum is used without one.
func (c *CRS) SetGridCatalog(cat GridSource) {
	c.GridCatalog = cat
}

// NewCRS parses a proj-string (or the bare literal "WGS84") into a fully
// resolved CRS.
func NewCRS(projString string) (*CRS, error) {
	trimmed := strings.TrimSpace(projString)
	if strings.EqualFold(trimmed, "WGS84") {
		projString = "+proj=longlat +ellps=WGS84 +datum=WGS84 +no_defs"
	}

	params, err := parseProjString(projString)
	if err != nil {
		return nil, err
	}

	projName, ok := params.String("proj")
	if !ok {
		return nil, newErr(KindMissingProj, "proj-string has no +proj parameter")
	}

	c := &CRS{Source: projString, ProjName: projName, Axis: "enu"}

	if projName == "geocent" {
		c.IsGeocentric = true
	}

	a, es, err := deriveEllipsoid(params)
	if err != nil {
		return nil, err
	}
	c.A, c.ES = a, es
	c.AOrig, c.ESOrig = a, es
	c.E = math.Sqrt(es)
	c.RA = 1 / a
	c.OneEs = 1 - es
	if c.OneEs == 0 {
		return nil, newErr(KindInvalidEllipsoid, "ellipsoid is degenerate (es=1)")
	}
	c.ROneEs = 1 / c.OneEs

	datum, err := resolveDatum(params, a, es)
	if err != nil {
		return nil, err
	}
	c.Datum = datum

	c.Geocentric, _ = params.Bool("geoc")
	c.OverRange, _ = params.Bool("over")

	if lwc, ok := params.Degree("lon_wrap"); ok {
		c.LongWrapSet = true
		c.LongWrapCenter = lwc
	}

	if axis, ok := params.String("axis"); ok {
		if err := validateAxis(axis); err != nil {
			return nil, err
		}
		c.Axis = axis
	}

	c.Lam0, _ = params.Degree("lon_0")
	c.Phi0, _ = params.Degree("lat_0")
	c.X0, _ = params.Float("x_0")
	c.Y0, _ = params.Float("y_0")

	if k0, ok := params.Float("k_0"); ok {
		c.K0 = k0
	} else if k0, ok := params.Float("k"); ok {
		c.K0 = k0
	} else {
		c.K0 = 1.0
	}
	if c.K0 <= 0 {
		return nil, newErr(KindInvalidParameterValue, "+k_0 must be positive, got %g", c.K0)
	}

	c.ToMeter, c.FromMeter = resolveUnit(params, "units", "to_meter")
	c.VToMeter, c.VFromMeter = resolveVerticalUnit(params, c.ToMeter, c.FromMeter)

	if name, ok := params.String("pm"); ok {
		if rad, ok := findPrimeMeridian(name); ok {
			c.FromGreenwich = rad
		} else {
			c.FromGreenwich = parseAngle(name)
		}
	}

	if c.IsGeocentric {
		c.proj = &geocentPassthrough{}
		return c, nil
	}

	factory, ok := projRegistry[projName]
	if !ok {
		return nil, newErr(KindUnsupportedProj, "unsupported projection %q", projName)
	}
	proj, err := factory(c, params)
	if err != nil {
		return nil, err
	}
	c.proj = proj
	return c, nil
}

// validateAxis requires +axis to be exactly 3 letters, one from each of the
// {e,w} {n,s} {u,d} pairs, each pair appearing exactly once, mirroring
// proj4rs's own find-based validation.
func validateAxis(axis string) error {
	if len(axis) != 3 {
		return newErr(KindInvalidAxis, "+axis must be exactly 3 letters, got %q", axis)
	}
	pairs := [3]string{"ewEW", "nsNS", "udUD"}
	seen := [3]bool{}
	for _, r := range axis {
		matched := false
		for i, set := range pairs {
			if strings.ContainsRune(set, r) {
				if seen[i] {
					return newErr(KindInvalidAxis, "+axis=%q repeats an axis letter", axis)
				}
				seen[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return newErr(KindInvalidAxis, "+axis=%q has an invalid letter %q", axis, string(r))
		}
	}
	if seen != [3]bool{true, true, true} {
		return newErr(KindInvalidAxis, "+axis=%q must name each of east/west, north/south, up/down once", axis)
	}
	return nil
}

func resolveUnit(params *ParamList, unitKey, toMeterKey string) (toMeter, fromMeter float64) {
	if name, ok := params.String(unitKey); ok {
		if u, ok := findUnit(name); ok {
			return u.toMeter, 1 / u.toMeter
		}
	}
	if s, ok := params.Float(toMeterKey); ok && s != 0 {
		return s, 1 / s
	}
	return 1, 1
}

func resolveVerticalUnit(params *ParamList, toMeter, fromMeter float64) (float64, float64) {
	if name, ok := params.String("vunits"); ok {
		if u, ok := findUnit(name); ok {
			return u.toMeter, 1 / u.toMeter
		}
	}
	if s, ok := params.Float("vto_meter"); ok && s != 0 {
		return s, 1 / s
	}
	return toMeter, fromMeter
}

// commonFwd stages a forward projection call: validates the input is on
// the geographic domain, applies +geoc geocentric-latitude correction and
// central-meridian/antimeridian wraparound, delegates to tr, then applies
// scale and false easting/northing.
func (c *CRS) commonFwd(lam, phi float64, tr translator) (x, y float64, err error) {
	t := math.Abs(phi) - halfPi
	if t > epsln || math.Abs(lam) > 10 {
		return math.Inf(1), math.Inf(1), newErr(KindLatOrLongExceedLimit, "lat/long (%g, %g) exceeds domain limit", lam, phi)
	}
	if math.Abs(t) <= epsln {
		phi = math.Copysign(halfPi, phi)
	} else if c.Geocentric {
		phi = math.Atan(c.ROneEs * math.Tan(phi))
	}
	lam -= c.Lam0
	if !c.OverRange {
		lam = adjlon(lam)
	}
	x, y, err = tr(lam, phi)
	if err != nil {
		return math.Inf(1), math.Inf(1), err
	}
	x = c.FromMeter * (c.A*x + c.X0)
	y = c.FromMeter * (c.A*y + c.Y0)
	return x, y, nil
}

// commonInv is the inverse staging counterpart of commonFwd.
func (c *CRS) commonInv(x, y float64, tr translator) (lam, phi float64, err error) {
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return math.Inf(1), math.Inf(1), newErr(KindCoordinateOutOfRange, "input coordinate is infinite")
	}
	x = (x*c.ToMeter - c.X0) * c.RA
	y = (y*c.ToMeter - c.Y0) * c.RA
	lam, phi, err = tr(x, y)
	if err != nil {
		return math.Inf(1), math.Inf(1), err
	}
	lam += c.Lam0
	if !c.OverRange {
		lam = adjlon(lam)
	}
	if c.Geocentric && math.Abs(math.Abs(phi)-halfPi) > epsln {
		phi = math.Atan(c.OneEs * math.Tan(phi))
	}
	return lam, phi, nil
}

// Forward projects a geographic (lam, phi), in radians, to this CRS's
// native (x, y).
func (c *CRS) Forward(lam, phi float64) (x, y float64, err error) {
	return c.proj.Forward(lam, phi)
}

// Inverse projects this CRS's native (x, y) back to geographic (lam, phi).
func (c *CRS) Inverse(x, y float64) (lam, phi float64, err error) {
	return c.proj.Inverse(x, y)
}

// IsLatLong reports whether this CRS's native coordinates are already
// geographic (the longlat/latlong family), skipping the projected<->
// geographic transform stage. +proj=geocent reports false; the transform
// pipeline handles it through IsGeocentric instead.
func (c *CRS) IsLatLong() bool {
	return c.proj.IsLatLong()
}

// geocentPassthrough is the Projection used for +proj=geocent, where the
// "projected" coordinate space IS geocentric XYZ and the geodetic<->
// geocentric conversion happens in the transform pipeline, not here.
type geocentPassthrough struct{}

func (geocentPassthrough) Forward(lam, phi float64) (float64, float64, error) { return lam, phi, nil }
func (geocentPassthrough) Inverse(x, y float64) (float64, float64, error)     { return x, y, nil }
func (geocentPassthrough) IsLatLong() bool                                   { return false }
