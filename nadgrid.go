// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "math"

// lp is a lambda/phi (longitude/latitude) pair, used both for grid origins
// and grid cell values.
type lp struct {
	lam, phi float64
}

// Grid is one loaded NTv2-style correction grid: an origin, a cell size, a
// row-major lattice of (dlam, dphi) correction values, and the lineage of
// any parent grid it's a refined sub-grid of.
type Grid struct {
	Name     string
	Lineage  string
	LL       lp
	Del      lp
	Lim      lp // lattice size, as floats (matches proj's own convention)
	Epsilon  float64
	Cvs      []lp
}

// NewGrid builds a Grid and derives its matching epsilon, the way
// proj4rs's loader does: (|del.lam|+|del.phi|)/10000.
func NewGrid(name, lineage string, ll, del, lim lp, cvs []lp) *Grid {
	return &Grid{
		Name:    name,
		Lineage: lineage,
		LL:      ll,
		Del:     del,
		Lim:     lim,
		Epsilon: (math.Abs(del.lam) + math.Abs(del.phi)) / 10000.0,
		Cvs:     cvs,
	}
}

func (g *Grid) isRoot() bool { return g.Lineage == "" }

func (g *Grid) isChildOf(other *Grid) bool { return g.Lineage == other.Name }

// matches reports whether (lam, phi) falls inside this grid's coverage,
// within its matching epsilon.
func (g *Grid) matches(lam, phi float64) bool {
	return !(g.LL.phi-g.Epsilon > phi ||
		g.LL.lam-g.Epsilon > lam ||
		g.LL.phi+(g.Lim.phi-1)*g.Del.phi+g.Epsilon < phi ||
		g.LL.lam+(g.Lim.lam-1)*g.Del.lam+g.Epsilon < lam)
}

// nadCvt applies this grid's correction in the given direction.
func (g *Grid) nadCvt(dir Direction, lam, phi, z float64) (float64, float64, float64, error) {
	if dir == DirForward {
		return g.nadCvtForward(lam, phi, z)
	}
	return g.nadCvtInverse(lam, phi, z)
}

func (g *Grid) nadCvtForward(lam, phi, z float64) (float64, float64, float64, error) {
	tLam, tPhi, err := g.nadIntr(adjlon(lam-g.LL.lam-math.Pi)+math.Pi, phi-g.LL.phi)
	if err != nil {
		return 0, 0, 0, err
	}
	return lam - tLam, phi + tPhi, z, nil
}

// nadCvtInverse recovers the pre-shift coordinate by Newton fixed-point
// iteration on the forward correction, up to 10 steps, stopping once the
// squared residual is at most 1e-48 (a residual of 1e-24). A step that
// leaves the grid ends the iteration with the current estimate.
func (g *Grid) nadCvtInverse(lam, phi, z float64) (float64, float64, float64, error) {
	const maxIter = 10
	const tol2 = 1.0e-24 * 1.0e-24

	tbLam := adjlon(lam-g.LL.lam-math.Pi) + math.Pi
	tbPhi := phi - g.LL.phi

	tLam, tPhi, err := g.nadIntr(tbLam, tbPhi)
	if err != nil {
		return 0, 0, 0, err
	}
	tLam += tbLam
	tPhi = tbPhi - tPhi

	i := maxIter
	for ; i > 0; i-- {
		delLam, delPhi, err := g.nadIntr(tLam, tPhi)
		if err != nil {
			break
		}
		diffLam := tLam - delLam - tbLam
		diffPhi := tPhi + delPhi - tbPhi
		tLam -= diffLam
		tPhi -= diffPhi
		if diffLam*diffLam+diffPhi*diffPhi <= tol2 {
			break
		}
	}

	if i == 0 {
		return 0, 0, 0, newErr(KindInverseGridShiftConv, "nad grid inverse did not converge")
	}
	return adjlon(tLam + g.LL.lam), tPhi + g.LL.phi, z, nil
}

// nadIntr bilinearly interpolates the grid's correction lattice at
// (lam, phi), snapping onto the boundary cell when the point lands within
// rounding tolerance of the grid's outer edge.
func (g *Grid) nadIntr(lam, phi float64) (float64, float64, error) {
	tLam := lam / g.Del.lam
	tPhi := phi / g.Del.phi

	iLam, fLam, err := checkLim(tLam, g.Lim.lam)
	if err != nil {
		return 0, 0, err
	}
	iPhi, fPhi, err := checkLim(tPhi, g.Lim.phi)
	if err != nil {
		return 0, 0, err
	}

	index := int(iPhi*g.Lim.lam + iLam)
	f00 := g.Cvs[index]
	f10 := g.Cvs[index+1]
	index += int(g.Lim.lam)
	f01 := g.Cvs[index]
	f11 := g.Cvs[index+1]

	m00 := (1 - fLam) * (1 - fPhi)
	m01 := (1 - fLam) * fPhi
	m10 := fLam * (1 - fPhi)
	m11 := fLam * fPhi

	return m00*f00.lam + m10*f10.lam + m01*f01.lam + m11*f11.lam,
		m00*f00.phi + m10*f10.phi + m01*f01.phi + m11*f11.phi,
		nil
}

// relToleranceHGridshift is the nadgrid lattice-edge snapping tolerance:
// a point within 10x this fraction of a boundary cell edge is snapped onto
// the edge instead of rejected as outside the grid.
const relToleranceHGridshift = 1.0e-5

// checkLim splits a lattice coordinate into integer cell + fraction,
// snapping a fraction within 10*relToleranceHGridshift of a lattice edge
// onto that edge, and rejecting a point that falls fully outside [0, lim).
func checkLim(t, lim float64) (i, f float64, err error) {
	i = math.Floor(t)
	f = t - i
	if i < 0 {
		if i == -1 && f > 1.0-10*relToleranceHGridshift {
			i++
			f = 0
		} else {
			return 0, 0, newErr(KindPointOutsideNadShiftArea, "point outside nadgrid shift area")
		}
	} else {
		switch n := i + 1; {
		case n == lim && f < 10*relToleranceHGridshift:
			i--
			f = 1
		case n > lim:
			return 0, 0, newErr(KindPointOutsideNadShiftArea, "point outside nadgrid shift area")
		}
	}
	return i, f, nil
}

// GridBuilder is the caller-supplied lazy loader invoked by a Catalog when a
// requested grid name has not yet been registered. It stands in for the
// out-of-scope NTv2 binary-file reader: given a grid name (stripped of any
// leading '@'), it returns the parsed Grid, or false if none is available.
type GridBuilder func(name string) (*Grid, bool)

// findGridInCatalog locates the best-matching grid for (lam, phi) among the
// named grids of a +nadgrids list, preferring the most deeply nested
// sub-grid whose coverage contains the point (falling back to its parent).
func findGridInCatalog(cat GridSource, names []string, lam, phi, z float64) (*Grid, bool) {
	for _, name := range names {
		optional := false
		if len(name) > 0 && name[0] == '@' {
			optional = true
			name = name[1:]
		}
		g, ok := cat.Find(name)
		if !ok {
			if optional {
				continue
			}
			return nil, false
		}
		if best := deepestMatch(cat, g, lam, phi); best != nil {
			return best, true
		}
	}
	return nil, false
}

// deepestMatch walks from a root grid toward whichever already-loaded
// sub-grid (sharing its lineage) more tightly contains the point.
func deepestMatch(cat GridSource, g *Grid, lam, phi float64) *Grid {
	if !g.matches(lam, phi) {
		return nil
	}
	best := g
	for _, cand := range cat.All() {
		if cand.isChildOf(best) && cand.matches(lam, phi) {
			best = cand
		}
	}
	return best
}

// GridSource is the read side of a Catalog that nadgrid lookup needs; both
// the single- and multi-threaded catalogs implement it.
type GridSource interface {
	Find(name string) (*Grid, bool)
	All() []*Grid
}
