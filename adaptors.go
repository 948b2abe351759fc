// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

// PointXY is a 2-D coordinate, transformed with an implicit z of 0.
type PointXY struct {
	X, Y float64
}

func (p *PointXY) TransformCoordinates(f PointTransformer) error {
	x, y, _, err := f(p.X, p.Y, 0)
	if err != nil {
		return err
	}
	p.X, p.Y = x, y
	return nil
}

// Points is a slice of 3-D points, transformed independently in place.
type Points []Point

func (ps Points) TransformCoordinates(f PointTransformer) error {
	for i := range ps {
		if err := ps[i].TransformCoordinates(f); err != nil {
			return err
		}
	}
	return nil
}

// PointsXY is a slice of 2-D points, transformed independently in place.
type PointsXY []PointXY

func (ps PointsXY) TransformCoordinates(f PointTransformer) error {
	for i := range ps {
		if err := ps[i].TransformCoordinates(f); err != nil {
			return err
		}
	}
	return nil
}

// StridedBuffer adapts a flat, possibly interleaved coordinate buffer (as
// produced by a geometry library or a columnar store) to Transform: X, Y
// and optionally Z hold every point's respective ordinate at index
// i*Stride, letting the caller transform coordinates in place without
// copying them into Point values first. A nil Z is treated as an
// all-zeros height that is not written back.
type StridedBuffer struct {
	X, Y, Z []float64
	Stride  int
	Count   int
}

func (b *StridedBuffer) TransformCoordinates(f PointTransformer) error {
	stride := b.Stride
	if stride <= 0 {
		stride = 1
	}
	for i := 0; i < b.Count; i++ {
		idx := i * stride
		var z float64
		if b.Z != nil {
			z = b.Z[idx]
		}
		x, y, zo, err := f(b.X[idx], b.Y[idx], z)
		if err != nil {
			return err
		}
		b.X[idx], b.Y[idx] = x, y
		if b.Z != nil {
			b.Z[idx] = zo
		}
	}
	return nil
}

// TransformVertex3D transforms a single (x, y, z) coordinate from src to
// dst, returning the result without mutating the inputs.
func TransformVertex3D(src, dst *CRS, x, y, z float64) (float64, float64, float64, error) {
	p := &Point{X: x, Y: y, Z: z}
	if err := TransformCRS(src, dst, p); err != nil {
		return 0, 0, 0, err
	}
	return p.X, p.Y, p.Z, nil
}

// TransformVertex2D is TransformVertex3D with an implicit, discarded z of 0.
func TransformVertex2D(src, dst *CRS, x, y float64) (float64, float64, error) {
	rx, ry, _, err := TransformVertex3D(src, dst, x, y, 0)
	return rx, ry, err
}
