// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "testing"

func TestLAEAEllipsoidal(t *testing.T) {
	checkForwardInverse(t, "+proj=laea +ellps=GRS80", []vertex{
		{lon: 2, lat: 1, x: 222602.471450095181, y: 110589.82722441027},
		{lon: 2, lat: -1, x: 222602.471450095181, y: -110589.827224408786},
		{lon: -2, lat: 1, x: -222602.471450095181, y: 110589.82722441027},
		{lon: -2, lat: -1, x: -222602.471450095181, y: -110589.827224408786},
	}, 1e-6)
}

func TestLAEASpherical(t *testing.T) {
	checkForwardInverse(t, "+proj=laea +a=6400000", []vertex{
		{lon: 2, lat: 1, x: 223365.281370124663, y: 111716.668072915665},
		{lon: 2, lat: -1, x: 223365.281370124663, y: -111716.668072915665},
		{lon: -2, lat: 1, x: -223365.281370124663, y: 111716.668072915665},
		{lon: -2, lat: -1, x: -223365.281370124663, y: -111716.668072915665},
	}, 1e-6)
}

func TestLAEAEPSG3035(t *testing.T) {
	checkForwardInverse(t, "+proj=laea +lat_0=52 +lon_0=10 +x_0=4321000 +y_0=3210000 +ellps=GRS80", []vertex{
		{lon: 15.4213696, lat: 47.0766716, x: 4732659.007426266, y: 2677630.7269610995},
	}, 1e-5)
}
