// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "testing"

func TestEtmercGRS80(t *testing.T) {
	checkForwardInverse(t, "+proj=etmerc +ellps=GRS80", []vertex{
		{lon: 2, lat: 1, x: 222650.79679758527, y: 110642.22941193319},
		{lon: 2, lat: -1, x: 222650.79679758527, y: -110642.22941193319},
		{lon: -2, lat: 1, x: -222650.79679758527, y: 110642.22941193319},
		{lon: -2, lat: -1, x: -222650.79679758527, y: -110642.22941193319},
	}, 1e-6)
}

func TestUTMZone30GRS80(t *testing.T) {
	checkForwardInverse(t, "+proj=utm +ellps=GRS80 +zone=30", []vertex{
		{lon: 2, lat: 1, x: 1057002.4054912976, y: 110955.14117594929},
		{lon: 2, lat: -1, x: 1057002.4054912976, y: -110955.1411759492},
		{lon: -2, lat: 1, x: 611263.8122789060, y: 110547.10569680421},
		{lon: -2, lat: -1, x: 611263.8122789060, y: -110547.10569680421},
	}, 1e-5)
}
