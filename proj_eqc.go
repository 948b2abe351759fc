// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

func init() {
	registerProj([]string{"eqc"}, newEquirectangular)
}

// equirectangular (Plate Carree) scales longitude by the cosine of a single
// standard parallel; latitude passes straight through.
type equirectangular struct {
	c        *CRS
	cosPhi1  float64
}

func newEquirectangular(c *CRS, params *ParamList) (Projection, error) {
	phi1, _ := params.Degree("lat_ts")
	return &equirectangular{c: c, cosPhi1: math.Cos(phi1)}, nil
}

func (*equirectangular) IsLatLong() bool { return false }

func (p *equirectangular) Forward(lam, phi float64) (float64, float64, error) {
	return p.c.commonFwd(lam, phi, p.fwd)
}

func (p *equirectangular) Inverse(x, y float64) (float64, float64, error) {
	return p.c.commonInv(x, y, p.inv)
}

func (p *equirectangular) fwd(lam, phi float64) (float64, float64, error) {
	return lam * p.cosPhi1, phi, nil
}

func (p *equirectangular) inv(x, y float64) (float64, float64, error) {
	return x / p.cosPhi1, y, nil
}
