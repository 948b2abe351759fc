// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "testing"

func TestStereaGRS80(t *testing.T) {
	checkForwardInverse(t, "+proj=sterea +ellps=GRS80", []vertex{
		{lon: 2, lat: 1, x: 222644.89410919772, y: 110611.09187173686},
		{lon: 2, lat: -1, x: 222644.89410919772, y: -110611.09187173827},
		{lon: -2, lat: 1, x: -222644.89410919772, y: 110611.09187173686},
		{lon: -2, lat: -1, x: -222644.89410919772, y: -110611.09187173827},
	}, 1e-6)
}
