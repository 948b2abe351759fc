// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

// primeMeridianTable is PROJ's 14-entry pm_list table; the DMS definitions
// are parsed by parseDegreeString.
var primeMeridianTable = map[string]string{
	"greenwich": "0dE",
	"lisbon":    "9d07'54.862\"W",
	"paris":     "2d20'14.025\"E",
	"bogota":    "74d04'51.3\"W",
	"madrid":    "3d41'16.58\"W",
	"rome":      "12d27'8.4\"E",
	"bern":      "7d26'22.5\"E",
	"jakarta":   "106d48'27.79\"E",
	"ferro":     "17d40'W",
	"brussels":  "4d22'4.71\"E",
	"stockholm": "18d3'29.8\"E",
	"athens":    "23d42'58.815\"E",
	"oslo":      "10d43'22.5\"E",
	"copenhagen": "12d34'40.35\"E",
}

func findPrimeMeridian(name string) (float64, bool) {
	defn, ok := primeMeridianTable[name]
	if !ok {
		return 0, false
	}
	return parseAngle(defn), true
}
