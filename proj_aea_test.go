// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "testing"

func TestAEAEllipsoidal(t *testing.T) {
	checkForwardInverse(t, "+proj=aea +ellps=GRS80 +lat_1=0 +lat_2=2", []vertex{
		{lon: 2, lat: 1, x: 222571.60875710563, y: 110653.32674302977},
		{lon: 2, lat: -1, x: 222706.30650839131, y: -110484.26714439997},
		{lon: -2, lat: 1, x: -222571.60875710563, y: 110653.32674302977},
		{lon: -2, lat: -1, x: -222706.30650839131, y: -110484.26714439997},
	}, 1e-6)
}

func TestAEASpherical(t *testing.T) {
	checkForwardInverse(t, "+proj=aea +R=6400000 +lat_1=0 +lat_2=2", []vertex{
		{lon: 2, lat: 1, x: 223334.08517088494, y: 111780.43188447191},
		{lon: 2, lat: -1, x: 223470.15499168713, y: -111610.33943099028},
		{lon: -2, lat: 1, x: -223334.08517088494, y: 111780.43188447191},
		{lon: -2, lat: -1, x: -223470.15499168713, y: -111610.33943099028},
	}, 1e-6)
}

func TestLEACEllipsoidal(t *testing.T) {
	checkForwardInverse(t, "+proj=leac +ellps=GRS80", []vertex{
		{lon: 2, lat: 1, x: 220685.14054297868, y: 112983.50088939646},
		{lon: 2, lat: -1, x: 224553.31227982609, y: -108128.63674487274},
		{lon: -2, lat: 1, x: -220685.14054297868, y: 112983.50088939646},
		{lon: -2, lat: -1, x: -224553.31227982609, y: -108128.63674487274},
	}, 1e-6)
}
