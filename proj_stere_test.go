// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "testing"

func TestStereEllipsoidal(t *testing.T) {
	verts := []vertex{
		{lon: 2, lat: 1, x: 222644.85455011716, y: 110610.88347417387},
		{lon: 2, lat: -1, x: 222644.85455011716, y: -110610.88347417528},
		{lon: -2, lat: 1, x: -222644.85455011716, y: 110610.88347417387},
		{lon: -2, lat: -1, x: -222644.85455011716, y: -110610.88347417528},
	}
	checkForwardInverse(t, "+proj=stere +ellps=GRS80", verts, 1e-6)
}

func TestStereSpherical(t *testing.T) {
	verts := []vertex{
		{lon: 2, lat: 1, x: 223407.81025950745, y: 111737.938996443},
		{lon: 2, lat: -1, x: 223407.81025950745, y: -111737.938996443},
		{lon: -2, lat: 1, x: -223407.81025950745, y: 111737.938996443},
		{lon: -2, lat: -1, x: -223407.81025950745, y: -111737.938996443},
	}
	checkForwardInverse(t, "+proj=stere +R=6400000", verts, 1e-6)
}

func TestUPSEllipsoidal(t *testing.T) {
	verts := []vertex{
		{lon: 2, lat: 1, x: 2433455.5634384668, y: -10412543.301512826},
		{lon: 2, lat: -1, x: 2448749.1185681992, y: -10850493.419804076},
		{lon: -2, lat: 1, x: 1566544.4365615332, y: -10412543.301512826},
		{lon: -2, lat: -1, x: 1551250.8814318008, y: -10850493.419804076},
	}
	checkForwardInverse(t, "+proj=ups +ellps=GRS80", verts, 1e-6)
}

func TestUPSRequiresEllipsoid(t *testing.T) {
	_, err := NewCRS("+proj=ups +R=6400000")
	if err == nil {
		t.Fatal("expected ups on a sphere to be rejected")
	}
}
