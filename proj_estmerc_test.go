// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "testing"

func TestTmercApproxEllipsoidal(t *testing.T) {
	verts := []vertex{
		{lon: 2, lat: 1, x: 222650.79679577847, y: 110642.22941192707},
		{lon: 2, lat: -1, x: 222650.79679577847, y: -110642.22941192707},
		{lon: -2, lat: 1, x: -222650.79679577847, y: 110642.22941192707},
		{lon: -2, lat: -1, x: -222650.79679577847, y: -110642.22941192707},
	}
	checkForwardInverse(t, "+proj=tmerc +ellps=GRS80 +approx", verts, 1e-6)
}

func TestTmercSphericalUsesApproxAutomatically(t *testing.T) {
	verts := []vertex{
		{lon: 2, lat: 1, x: 223413.46640632232, y: 111769.14504059685},
		{lon: 2, lat: -1, x: 223413.46640632232, y: -111769.14504059685},
		{lon: -2, lat: 1, x: -223413.46640632208, y: 111769.14504059685},
		{lon: -2, lat: -1, x: -223413.46640632208, y: -111769.14504059685},
	}
	checkForwardInverse(t, "+proj=tmerc +R=6400000", verts, 1e-6)
}

func TestTmercDefaultsToExactEtmercOnEllipsoid(t *testing.T) {
	exact, err := NewCRS("+proj=etmerc +ellps=GRS80")
	if err != nil {
		t.Fatal(err)
	}
	tmerc, err := NewCRS("+proj=tmerc +ellps=GRS80")
	if err != nil {
		t.Fatal(err)
	}
	xe, ye, err := exact.Forward(2*d2r, 1*d2r)
	if err != nil {
		t.Fatal(err)
	}
	xt, yt, err := tmerc.Forward(2*d2r, 1*d2r)
	if err != nil {
		t.Fatal(err)
	}
	if xe != xt || ye != yt {
		t.Fatalf("expected +proj=tmerc to default to the exact etmerc series: got (%v,%v) vs (%v,%v)", xt, yt, xe, ye)
	}
}

func TestTmercRejectsUnknownAlgo(t *testing.T) {
	_, err := NewCRS("+proj=tmerc +ellps=GRS80 +algo=bogus")
	if err == nil {
		t.Fatal("expected an unknown +algo to be rejected")
	}
}
