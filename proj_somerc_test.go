// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "testing"

func TestSomercEllipsoidal(t *testing.T) {
	checkForwardInverse(t, "+proj=somerc +ellps=GRS80", []vertex{
		{lon: 2, lat: 1, x: 222638.98158654713, y: 110579.96521824898},
		{lon: 2, lat: -1, x: 222638.98158654713, y: -110579.96521825089},
		{lon: -2, lat: 1, x: -222638.98158654713, y: 110579.96521824898},
		{lon: -2, lat: -1, x: -222638.98158654713, y: -110579.96521825089},
	}, 1e-6)
}

func TestSomercSpherical(t *testing.T) {
	checkForwardInverse(t, "+proj=somerc +a=6400000", []vertex{
		{lon: 2, lat: 1, x: 223402.14425527418, y: 111706.74357494408},
		{lon: 2, lat: -1, x: 223402.14425527418, y: -111706.74357494518},
		{lon: -2, lat: 1, x: -223402.14425527418, y: 111706.74357494408},
		{lon: -2, lat: -1, x: -223402.14425527418, y: -111706.74357494518},
	}, 1e-6)
}
