// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"math"
	"strconv"
	"strings"
)

// DatumKind distinguishes the supported datum-shift strategies. A CRS
// carries exactly one.
type DatumKind int

const (
	// NoDatum means no datum shift is applied; geocentric coordinates pass
	// straight through on the way to/from WGS84.
	NoDatum DatumKind = iota
	// ToWGS84Zero is the identity Helmert shift (towgs84=0,0,0).
	ToWGS84Zero
	// ToWGS84Three is a 3-parameter (translation-only) Helmert shift.
	ToWGS84Three
	// ToWGS84Seven is a 7-parameter Bursa-Wolf similarity transform.
	ToWGS84Seven
	// NadGrids shifts through one or more NTv2-style correction grids.
	NadGrids
)

// datumDefn is one row of the static named-datum table.
type datumDefn struct {
	id, definition, ellipse, comment string
}

// datumTable mirrors proj4rs's 17-entry table: the original 10 PROJ.4
// entries plus 7 more datums carried over from proj4js.
var datumTable = []datumDefn{
	{"WGS84", "towgs84=0,0,0", "WGS84", ""},
	{"GGRS87", "towgs84=-199.87,74.79,246.62", "GRS80", "Greek_Geodetic_Reference_System_1987"},
	{"NAD83", "towgs84=0,0,0", "GRS80", "North_American_Datum_1983"},
	{"NAD27", "nadgrids=@conus,@alaska,@ntv2_0.gsb,@ntv1_can.dat", "clrk66", "North_American_Datum_1927"},
	{"potsdam", "towgs84=598.1,73.7,418.2,0.202,0.045,-2.455,6.7", "bessel", "Potsdam Rauenberg 1950 DHDN"},
	{"carthage", "towgs84=-263.0,6.0,431.0", "clrk80ign", "Carthage 1934 Tunisia"},
	{"hermannskogel", "towgs84=577.326,90.129,463.919,5.137,1.474,5.297,2.4232", "bessel", "Hermannskogel"},
	{"ire65", "towgs84=482.530,-130.596,564.557,-1.042,-0.214,-0.631,8.15", "mod_airy", "Ireland 1965"},
	{"nzgd49", "towgs84=59.47,-5.04,187.44,0.47,-0.1,1.024,-4.5993", "intl", "New Zealand Geodetic Datum 1949"},
	{"OSGB36", "towgs84=446.448,-125.157,542.060,0.1502,0.2470,0.8421,-20.4894", "airy", "Airy 1830"},
	{"ch1903", "towgs84=674.374,15.056,405.346", "bessel", "swiss"},
	{"osni52", "towgs84=482.530,-130.596,564.557,-1.042,-0.214,-0.631,8.15", "airy", "Irish National"},
	{"rassadiran", "towgs84=-133.63,-157.5,-158.62", "intl", "Rassadiran"},
	{"s_jtsk", "towgs84=589,76,480", "bessel", "S-JTSK (Ferro)"},
	{"beduaram", "towgs84=-106,-87,188", "clrk80", "Beduaram"},
	{"gunung_segara", "towgs84=-403,684,41", "bessel", "Gunung Segara Jakarta"},
	{"rnb72", "towgs84=106.869,-52.2978,103.724,-0.33657,0.456955,-1.84218,1", "intl", "Reseau National Belge 1972"},
}

var datumIndex = func() map[string]datumDefn {
	m := make(map[string]datumDefn, len(datumTable))
	for _, d := range datumTable {
		m[d.id] = d
	}
	return m
}()

func findDatum(name string) (datumDefn, bool) {
	d, ok := datumIndex[name]
	return d, ok
}

// Datum is the resolved datum-shift configuration of a CRS: how to get from
// this ellipsoid's geocentric frame to WGS84 geocentric and back.
type Datum struct {
	Kind        DatumKind
	Params      [7]float64 // dx,dy,dz[,rx,ry,rz,m] depending on Kind
	CatalogName string     // set when Kind == NadGrids and a +catalog is given
	GridNames   []string   // set when Kind == NadGrids via +nadgrids
}

// resolveDatum applies a named +datum (expanding it into +ellps/+towgs84/
// +nadgrids on the ParamList, the way proj4rs's datums::find does) and then
// derives the Datum from whichever of +nadgrids, +catalog or +towgs84 ended
// up set. A 3-value +towgs84=0,0,0 (given directly or through a named
// datum such as WGS84 or NAD83) on an ellipsoid with a=6378137 and es
// within 5e-11 of WGS84's resolves to ToWGS84Zero, matching the original's
// "already WGS84, skip Bursa-Wolf" fast path.
func resolveDatum(params *ParamList, a, es float64) (Datum, error) {
	if name, ok := params.String("datum"); ok {
		def, ok := findDatum(name)
		if !ok {
			return Datum{}, newErr(KindInvalidDatum, "unknown datum %q", name)
		}
		params.setDefault("ellps", def.ellipse)
		key, val := keyVal(def.definition)
		params.setDefault(key, val)
	}

	if names, ok := params.String("nadgrids"); ok {
		return Datum{Kind: NadGrids, GridNames: strings.Split(names, ",")}, nil
	}
	if catalog, ok := params.String("catalog"); ok {
		return Datum{Kind: NadGrids, CatalogName: catalog}, nil
	}
	if towgs84, ok := params.String("towgs84"); ok {
		parts := strings.Split(towgs84, ",")
		var p [7]float64
		for i, f := range parts {
			if i >= 7 {
				break
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return Datum{}, newErr(KindInvalidParameterValue, "invalid +towgs84 value %q", f)
			}
			p[i] = v
		}
		switch len(parts) {
		case 3:
			if p[0] == 0 && p[1] == 0 && p[2] == 0 {
				return wgs84FastPath(p, a, es), nil
			}
			return Datum{Kind: ToWGS84Three, Params: p}, nil
		case 7:
			p[3] *= secToRad
			p[4] *= secToRad
			p[5] *= secToRad
			p[6] = p[6]/1000000.0 + 1
			return Datum{Kind: ToWGS84Seven, Params: p}, nil
		default:
			return Datum{}, newErr(KindInvalidParameterValue, "+towgs84 needs 3 or 7 comma-separated values, got %d", len(parts))
		}
	}
	return Datum{Kind: NoDatum}, nil
}

// wgs84FastPath recognizes an identity towgs84 shift on the WGS84/GRS80
// ellipsoid as "already WGS84": no Helmert math is needed at transform time.
func wgs84FastPath(p [7]float64, a, es float64) Datum {
	if a == 6378137.0 && math.Abs(es-0.006694379990) < 0.000000000050 {
		return Datum{Kind: ToWGS84Zero}
	}
	return Datum{Kind: ToWGS84Three, Params: p}
}

// geocentricToWGS84 applies the Helmert/Bursa-Wolf shift forward (this
// datum's geocentric frame -> WGS84 geocentric), in metres.
func geocentricToWGS84(d Datum, x, y, z float64) (float64, float64, float64) {
	switch d.Kind {
	case NoDatum:
		return x, y, z
	case ToWGS84Three:
		return x + d.Params[0], y + d.Params[1], z + d.Params[2]
	case ToWGS84Seven:
		dx, dy, dz, rx, ry, rz, m := d.Params[0], d.Params[1], d.Params[2], d.Params[3], d.Params[4], d.Params[5], d.Params[6]
		return m*(x-rz*y+ry*z) + dx,
			m*(rz*x+y-rx*z) + dy,
			m*(-ry*x+rx*y+z) + dz
	}
	return x, y, z
}

// wgs84ToGeocentric inverts geocentricToWGS84 (WGS84 geocentric -> this
// datum's geocentric frame).
func wgs84ToGeocentric(d Datum, x, y, z float64) (float64, float64, float64) {
	switch d.Kind {
	case NoDatum:
		return x, y, z
	case ToWGS84Three:
		return x - d.Params[0], y - d.Params[1], z - d.Params[2]
	case ToWGS84Seven:
		dx, dy, dz, rx, ry, rz, m := d.Params[0], d.Params[1], d.Params[2], d.Params[3], d.Params[4], d.Params[5], d.Params[6]
		x, y, z = x-dx, y-dy, z-dz
		return (x+rz*y-ry*z) / m,
			(-rz*x+y+rx*z) / m,
			(ry*x-rx*y+z) / m
	}
	return x, y, z
}

// sameDatum reports whether two datums describe the same shift, letting
// datumTransform skip the WGS84 round trip entirely when source and
// destination already agree (matching proj4rs's pj_datum_transform
// short-circuit).
func sameDatum(a, b Datum) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NoDatum:
		return true
	case NadGrids:
		return a.CatalogName == b.CatalogName && strings.Join(a.GridNames, ",") == strings.Join(b.GridNames, ",")
	default:
		return a.Params == b.Params
	}
}
