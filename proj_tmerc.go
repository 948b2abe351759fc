// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"etmerc"}, newEtmerc)
	registerProj([]string{"utm"}, newUTM)
	registerProj([]string{"tmerc"}, newTmerc)
}

// newTmerc dispatches +proj=tmerc between the Poder/Engsager "exact" series
// (etmerc) and the Evenden/Snyder approximation (estmerc): the sphere has
// no etmerc form at all, so it always gets the approximation; on an
// ellipsoid the default is etmerc, overridable with +approx or
// +algo=evenden_snyder (+algo=poder_engsager is the explicit spelling of
// the default).
func newTmerc(c *CRS, params *ParamList) (Projection, error) {
	if c.ES == 0 {
		return newEstmerc(c, params)
	}
	if approx, _ := params.Bool("approx"); approx {
		return newEstmerc(c, params)
	}
	switch algo, _ := params.String("algo"); algo {
	case "evenden_snyder":
		return newEstmerc(c, params)
	case "", "poder_engsager":
		return newEtmerc(c, params)
	default:
		return nil, newErr(KindInvalidParameterValue, "tmerc: unknown +algo=%q", algo)
	}
}

// etmercDomainLimit is the forward/inverse series' radius of convergence,
// ~150 degrees from the central meridian.
const etmercDomainLimit = 2.623395162778

// etmerc is the Poder/Engsager "exact" transverse Mercator, the basis of
// both +proj=etmerc and +proj=utm. It has no spherical form.
type etmerc struct {
	c                  *CRS
	qn, zb             float64
	cgb, cbg, utg, gtu etmercCoeffs
}

func newEtmerc(c *CRS, params *ParamList) (Projection, error) {
	// es = f(2-f) inverts to f = 1 - sqrt(1-es)
	f := 1 - math.Sqrt(1-c.ES)
	if f == 0 {
		return nil, newErr(KindEllipsoidRequired, "etmerc requires a non-spherical ellipsoid")
	}

	n := f / (2 - f)
	n2 := n * n

	cgb := etmercCoeffs{
		n * (2 + n*(-2.0/3.0+n*(-2+n*(116.0/45.0+n*(26.0/45.0+n*(-2854.0/675.0)))))),
		n2 * (7.0/3.0 + n*(-8.0/5.0+n*(-227.0/45.0+n*(2704.0/315.0+n*(2323.0/945.0))))),
		n2 * n * (56.0/15.0 + n*(-136.0/35.0+n*(-1262.0/105.0+n*(73814.0/2835.0)))),
		n2 * n2 * (4279.0/630.0 + n*(-332.0/35.0+n*(-399572.0/14175.0))),
		n2 * n2 * n * (4174.0/315.0 + n*(-144838.0/6237.0)),
		n2 * n2 * n2 * (601676.0 / 22275.0),
	}
	cbg := etmercCoeffs{
		n * (-2 + n*(2.0/3.0+n*(4.0/3.0+n*(-82.0/45.0+n*(32.0/45.0+n*(4642.0/4725.0)))))),
		n2 * (5.0/3.0 + n*(-16.0/15.0+n*(-13.0/9.0+n*(904.0/315.0+n*(-1522.0/945.0))))),
		n2 * n * (-26.0/15.0 + n*(34.0/21.0+n*(8.0/5.0+n*(-12686.0/2835.0)))),
		n2 * n2 * (1237.0/630.0 + n*(-12.0/5.0+n*(-24832.0/14175.0))),
		n2 * n2 * n * (-734.0/315.0 + n*(109598.0/31185.0)),
		n2 * n2 * n2 * (444337.0 / 155925.0),
	}
	utg := etmercCoeffs{
		n * (-0.5 + n*(2.0/3.0+n*(-37.0/96.0+n*(1.0/360.0+n*(81.0/512.0+n*(-96199.0/604800.0)))))),
		n2 * (-1.0/48.0 + n*(-1.0/15.0+n*(437.0/1440.0+n*(-46.0/105.0+n*(1118711.0/3870720.0))))),
		n2 * n * (-17.0/480.0 + n*(37.0/840.0+n*(209.0/4480.0+n*(-5569.0/90720.0)))),
		n2 * n2 * (-4397.0/161280.0 + n*(11.0/504.0+n*(830251.0/7257600.0))),
		n2 * n2 * n * (-4583.0/161280.0 + n*(108847.0/3991680.0)),
		n2 * n2 * n2 * (-20648693.0 / 638668800.0),
	}
	gtu := etmercCoeffs{
		n * (0.5 + n*(-2.0/3.0+n*(5.0/16.0+n*(41.0/180.0+n*(-127.0/288.0+n*(7891.0/37800.0)))))),
		n2 * (13.0/48.0 + n*(-3.0/5.0+n*(557.0/1440.0+n*(281.0/630.0+n*(-1983433.0/1935360.0))))),
		n2 * n * (61.0/240.0 + n*(-103.0/140.0+n*(15061.0/26880.0+n*(167603.0/181440.0)))),
		n2 * n2 * (49561.0/161280.0 + n*(-179.0/168.0+n*(6601661.0/7257600.0))),
		n2 * n2 * n * (34729.0/80640.0 + n*(-3418889.0/1995840.0)),
		n2 * n2 * n2 * (212378941.0 / 319334400.0),
	}

	qn := c.K0 / (1 + n) * (1 + n2*(1.0/4.0+n2*(1.0/64.0+n2/256.0)))

	z := gatg(cbg, c.Phi0)
	zb := -qn * (z + clens(gtu, 2*z))

	return &etmerc{c: c, qn: qn, zb: zb, cgb: cgb, cbg: cbg, utg: utg, gtu: gtu}, nil
}

func (*etmerc) IsLatLong() bool { return false }

func (p *etmerc) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *etmerc) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *etmerc) fwd(lam, phi float64) (float64, float64, error) {
	cn, ce := phi, lam

	cn = gatg(p.cbg, cn)

	sinCn, cosCn := math.Sincos(cn)
	sinCe, cosCe := math.Sincos(ce)

	cn = math.Atan2(sinCn, cosCe*cosCn)
	ce = math.Atan2(sinCe*cosCn, math.Hypot(sinCn, cosCn*cosCe))

	ce = asinh(math.Tan(ce))
	dCn, dCe := clensCplx(p.gtu, 2*cn, 2*ce)
	cn += dCn
	ce += dCe

	if math.Abs(ce) > etmercDomainLimit {
		return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "etmerc: longitude too far from central meridian")
	}
	return p.qn * ce, p.qn*cn + p.zb, nil
}

func (p *etmerc) inv(x, y float64) (float64, float64, error) {
	cn := (y - p.zb) / p.qn
	ce := x / p.qn

	if math.Abs(ce) > etmercDomainLimit {
		return 0, 0, newErr(KindCoordTransOutsideProjectionDomain, "etmerc inverse: easting too far from central meridian")
	}

	dCn, dCe := clensCplx(p.utg, 2*cn, 2*ce)
	cn += dCn
	ce += dCe
	ce = math.Atan(math.Sinh(ce))

	sinCn, cosCn := math.Sincos(cn)
	sinCe, cosCe := math.Sincos(ce)

	ce = math.Atan2(sinCe, cosCe*cosCn)
	cn = math.Atan2(sinCn*cosCe, math.Hypot(sinCe, cosCe*cosCn))

	return ce, gatg(p.cgb, cn), nil
}

// newUTM adapts a CRS's x0/y0/lam0/k0/phi0 to UTM zone conventions, then
// delegates to the etmerc engine for the actual series.
func newUTM(c *CRS, params *ParamList) (Projection, error) {
	c.X0 = 500000.0
	if south, _ := params.Bool("south"); south {
		c.Y0 = 10000000.0
	} else {
		c.Y0 = 0
	}

	var zone float64
	if z, ok := params.Int("zone"); ok {
		if z < 1 || z > 60 {
			return nil, newErr(KindInvalidUTMZone, "utm zone %d out of range [1,60]", z)
		}
		zone = float64(z)
	} else {
		zone = math.Floor(math.Round((adjlon(c.Lam0) + math.Pi) * 30 / math.Pi))
		if zone < 1 || zone > 60 {
			return nil, newErr(KindInvalidUTMZone, "no +zone given and central meridian does not resolve to a valid UTM zone")
		}
	}

	c.Lam0 = ((zone-1)+0.5)*math.Pi/30 - math.Pi
	c.K0 = 0.9996
	c.Phi0 = 0

	return newEtmerc(c, params)
}
