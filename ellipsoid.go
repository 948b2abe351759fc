// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"math"
	"strconv"
)

// ellipsoidDefn is one row of the static ellipsoid table: a semi-major axis
// plus either an inverse flattening or a minor axis.
type ellipsoidDefn struct {
	id      string
	a       float64
	invFlat float64 // 0 if b is given instead
	b       float64 // 0 if invFlat is given instead
	comment string
}

// ellipsoidTable mirrors proj4rs's 46-entry table (itself a superset of the
// original PROJ.4 ellps.c list, adding GSK2011, PZ90 and danish).
var ellipsoidTable = []ellipsoidDefn{
	{"MERIT", 6378137.0, 298.257, 0, "MERIT 1983"},
	{"SGS85", 6378136.0, 298.257, 0, "Soviet Geodetic System 85"},
	{"GRS80", 6378137.0, 298.257222101, 0, "GRS 1980(IUGG, 1980)"},
	{"IAU76", 6378140.0, 298.257, 0, "IAU 1976"},
	{"airy", 6377563.396, 299.3249646, 0, "Airy 1830"},
	{"APL4.9", 6378137.0, 298.25, 0, "Appl. Physics. 1965"},
	{"NWL9D", 6378145.0, 298.25, 0, "Naval Weapons Lab., 1965"},
	{"mod_airy", 6377340.189, 0, 6356034.446, "Modified Airy"},
	{"andrae", 6377104.43, 300.0, 0, "Andrae 1876 (Den., Iclnd.)"},
	{"danish", 6377019.2563, 300.0, 0, "Andrae 1876 (Denmark, Iceland)"},
	{"aust_SA", 6378160.0, 298.25, 0, "Australian Natl & S. Amer. 1969"},
	{"GRS67", 6378160.0, 298.2471674270, 0, "GRS 67(IUGG 1967)"},
	{"GSK2011", 6378136.5, 298.2564151, 0, "GSK-2011"},
	{"bessel", 6377397.155, 299.1528128, 0, "Bessel 1841"},
	{"bess_nam", 6377483.865, 299.1528128, 0, "Bessel 1841 (Namibia)"},
	{"clrk66", 6378206.4, 0, 6356583.8, "Clarke 1866"},
	{"clrk80", 6378249.145, 293.4663, 0, "Clarke 1880 mod."},
	{"clrk80ign", 6378249.2, 293.4660212936269, 0, "Clarke 1880 (IGN)."},
	{"CPM", 6375738.7, 334.29, 0, "Comm. des Poids et Mesures 1799"},
	{"delmbr", 6376428.0, 311.5, 0, "Delambre 1810 (Belgium)"},
	{"engelis", 6378136.05, 298.2566, 0, "Engelis 1985"},
	{"evrst30", 6377276.345, 300.8017, 0, "Everest 1830"},
	{"evrst48", 6377304.063, 300.8017, 0, "Everest 1948"},
	{"evrst56", 6377301.243, 300.8017, 0, "Everest 1956"},
	{"evrst69", 6377295.664, 300.8017, 0, "Everest 1969"},
	{"evrstSS", 6377298.556, 300.8017, 0, "Everest (Sabah & Sarawak)"},
	{"fschr60", 6378166.0, 298.3, 0, "Fischer (Mercury Datum) 1960"},
	{"fschr60m", 6378155.0, 298.3, 0, "Modified Fischer 1960"},
	{"fschr68", 6378150.0, 298.3, 0, "Fischer 1968"},
	{"helmert", 6378200.0, 298.3, 0, "Helmert 1906"},
	{"hough", 6378270.0, 297.0, 0, "Hough"},
	{"intl", 6378388.0, 297.0, 0, "International 1924 (Hayford 1909, 1910)"},
	{"krass", 6378245.0, 298.3, 0, "Krassovsky, 1942"},
	{"kaula", 6378163.0, 298.24, 0, "Kaula 1961"},
	{"lerch", 6378139.0, 298.257, 0, "Lerch 1979"},
	{"mprts", 6397300.0, 191.0, 0, "Maupertius 1738"},
	{"new_intl", 6378157.5, 0, 6356772.2, "New International 1967"},
	{"plessis", 6376523.0, 0, 6355863.0, "Plessis 1817 (France)"},
	{"PZ90", 6378136.0, 298.25784, 0, "PZ-90"},
	{"SEasia", 6378155.0, 0, 6356773.3205, "Southeast Asia"},
	{"walbeck", 6376896.0, 0, 6355834.8467, "Walbeck"},
	{"WGS60", 6378165.0, 298.3, 0, "WGS 60"},
	{"WGS66", 6378145.0, 298.25, 0, "WGS 66"},
	{"WGS72", 6378135.0, 298.26, 0, "WGS 72"},
	{"WGS84", 6378137.0, 298.257223563, 0, "WGS 84"},
	{"sphere", 6370997.0, 0, 6370997.0, "Normal Sphere (r=6370997)"},
}

var ellipsoidIndex = func() map[string]ellipsoidDefn {
	m := make(map[string]ellipsoidDefn, len(ellipsoidTable))
	for _, e := range ellipsoidTable {
		m[e.id] = e
	}
	return m
}()

func findEllipsoid(name string) (ellipsoidDefn, bool) {
	e, ok := ellipsoidIndex[name]
	return e, ok
}

// Series coefficients for the R_A (authalic) and R_V (equal-volume) sphere
// radii used by deriveEllipsoid's spherification step.
const (
	sixth = 1.0 / 6.0
	ra4   = 17.0 / 360.0
	ra6   = 67.0 / 3024.0
	rv4   = 5.0 / 72.0
	rv6   = 55.0 / 1296.0
)

// deriveEllipsoid implements proj-string shape-parameter precedence:
// {rf, f, es, e, b} in that priority order, per the "+ellps" table lookup
// followed by an explicit override, then a possible sphere-snap within
// 1e-10 and an R_A/R_V/R_g/R_h spherification. A named +datum supplies its
// ellipsoid when +ellps is absent, and WGS84 is used when neither +a nor
// +ellps is given.
func deriveEllipsoid(params *ParamList) (a, es float64, err error) {
	if r, ok := params.Float("R"); ok {
		return r, 0, nil
	}

	if name, ok := params.String("datum"); ok {
		if def, ok := findDatum(name); ok {
			params.setDefault("ellps", def.ellipse)
		}
	}
	if !hasParam(params, "a") {
		params.setDefault("ellps", "WGS84")
	}

	if name, ok := params.String("ellps"); ok {
		ell, ok := findEllipsoid(name)
		if !ok {
			return 0, 0, newErr(KindInvalidEllipsoid, "unknown ellipsoid %q", name)
		}
		params.setDefault("a", floatStr(ell.a))
		if ell.b != 0 {
			params.setDefault("b", floatStr(ell.b))
		} else {
			params.setDefault("rf", floatStr(ell.invFlat))
		}
	}

	a, ok := params.Float("a")
	if !ok {
		return 0, 0, newErr(KindEllipsoidRequired, "no ellipsoid semi-major axis (+a or +ellps) given")
	}

	var b float64
	switch {
	case hasParam(params, "rf"):
		rf, _ := params.Float("rf")
		es = 1 / rf
		es = es * (2 - es)
	case hasParam(params, "f"):
		f, _ := params.Float("f")
		es = f * (2 - f)
	case hasParam(params, "es"):
		es, _ = params.Float("es")
	case hasParam(params, "e"):
		e, _ := params.Float("e")
		es = e * e
	case hasParam(params, "b"):
		b, _ = params.Float("b")
		es = 1 - (b*b)/(a*a)
	}

	if math.Abs(es) < 1e-10 {
		es = 0
	}
	if b == 0 {
		b = a * math.Sqrt(1-es)
	}

	switch {
	case flagSet(params, "R_A"):
		a *= 1 - es*(sixth+es*(ra4+es*ra6))
		es = 0
	case flagSet(params, "R_V"):
		a *= 1 - es*(sixth+es*(rv4+es*rv6))
		es = 0
	case flagSet(params, "R_g"):
		a = math.Sqrt(a * b)
		es = 0
	case flagSet(params, "R_h"):
		a = 2 * a * b / (a + b)
		es = 0
	case flagSet(params, "R_lat_a"), flagSet(params, "R_lat_g"):
		return 0, 0, newErr(KindInvalidParameterValue, "R_lat_a/R_lat_g spherification is not supported")
	}

	return a, es, nil
}

func hasParam(p *ParamList, key string) bool {
	_, ok := p.String(key)
	return ok
}

func flagSet(p *ParamList, key string) bool {
	b, ok := p.Bool(key)
	return ok && b
}

func floatStr(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// setEllipsoid overrides a CRS's shape parameters after construction, for
// projections (krovak's hardcoded Bessel, moll's sphere-only forms) that
// substitute their own ellipsoid regardless of what was parsed.
func setEllipsoid(c *CRS, a, es float64) {
	c.A = a
	c.ES = es
	c.E = math.Sqrt(es)
	c.RA = 1 / a
	c.OneEs = 1 - es
	c.ROneEs = 1 / c.OneEs
}
