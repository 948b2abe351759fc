// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "testing"

func TestLCCGRS80(t *testing.T) {
	checkForwardInverse(t, "+proj=lcc +ellps=GRS80 +lat_1=0.5 +lat_2=2", []vertex{
		{lon: 2, lat: 1, x: 222588.439735968423, y: 110660.533870799671},
		{lon: 2, lat: -1, x: 222756.879700278747, y: -110532.797660827026},
		{lon: -2, lat: 1, x: -222588.439735968423, y: 110660.533870799671},
		{lon: -2, lat: -1, x: -222756.879700278747, y: -110532.797660827026},
	}, 1e-6)
}
