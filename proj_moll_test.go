// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "testing"

func TestMollweide(t *testing.T) {
	checkForwardInverse(t, "+proj=moll", []vertex{
		{lon: 2, lat: 1, x: 200426.67539284358, y: 123642.46137843542},
		{lon: 2, lat: -1, x: 200426.67539284358, y: -123642.46137843542},
		{lon: -2, lat: 1, x: -200426.67539284358, y: 123642.46137843542},
		{lon: -2, lat: -1, x: -200426.67539284358, y: -123642.46137843542},
	}, 1e-6)
}

func TestWagnerIV(t *testing.T) {
	checkForwardInverse(t, "+proj=wag4", []vertex{
		{lon: 2, lat: 1, x: 192142.59162431932, y: 128974.11846682805},
		{lon: 2, lat: -1, x: 192142.59162431932, y: -128974.11846682805},
		{lon: -2, lat: 1, x: -192142.59162431932, y: 128974.11846682805},
		{lon: -2, lat: -1, x: -192142.59162431932, y: -128974.11846682805},
	}, 1e-6)
}

func TestWagnerV(t *testing.T) {
	checkForwardInverse(t, "+proj=wag5", []vertex{
		{lon: 2, lat: 1, x: 202532.80926341165, y: 138177.98447111444},
		{lon: 2, lat: -1, x: 202532.80926341165, y: -138177.98447111444},
		{lon: -2, lat: 1, x: -202532.80926341165, y: 138177.98447111444},
		{lon: -2, lat: -1, x: -202532.80926341165, y: -138177.98447111444},
	}, 1e-6)
}
