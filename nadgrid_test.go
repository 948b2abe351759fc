// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// flatGrid builds a trivial 3x3-node grid (two cells per axis, covering
// -1..+1 degree in both lam and phi) whose correction is a constant
// (dlam, dphi) everywhere inside its coverage, just large enough
// to exercise nadCvt's bilinear interpolation and its forward/inverse
// round trip without needing a real NTv2 file.
func flatGrid(name string, dlam, dphi float64) *Grid {
	ll := lp{lam: -1 * d2r, phi: -1 * d2r}
	del := lp{lam: 1 * d2r, phi: 1 * d2r}
	lim := lp{lam: 3, phi: 3}
	cvs := make([]lp, 0, 9)
	for i := 0; i < 9; i++ {
		cvs = append(cvs, lp{lam: dlam, phi: dphi})
	}
	return NewGrid(name, "", ll, del, lim, cvs)
}

func TestGridMatchesAndConvertsRoundTrip(t *testing.T) {
	g := flatGrid("test", 0.0001, -0.0002)
	assert.True(t, g.matches(0, 0))
	assert.False(t, g.matches(10, 10))

	lam, phi, z, err := g.nadCvtForward(0.3*d2r, 0.2*d2r, 5)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, z)

	lam2, phi2, _, err := g.nadCvtInverse(lam, phi, z)
	assert.NoError(t, err)
	assert.InDelta(t, 0.3*d2r, lam2, 1e-12)
	assert.InDelta(t, 0.2*d2r, phi2, 1e-12)
}

func TestCatalogFindAndDeepestMatch(t *testing.T) {
	cat := NewCatalog()
	root := flatGrid("root", 0.0001, 0.0001)
	cat.AddGrid(root)

	g, ok := findGridInCatalog(cat, []string{"root"}, 0, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, root, g)

	_, ok = findGridInCatalog(cat, []string{"@missing"}, 0, 0, 0)
	assert.False(t, ok)

	_, ok = findGridInCatalog(cat, []string{"missing"}, 0, 0, 0)
	assert.False(t, ok)
}

func TestCRSWithoutGridCatalogReturnsNadGridNotAvailable(t *testing.T) {
	c, err := NewCRS("+proj=longlat +ellps=clrk66 +nadgrids=@conus")
	assert.NoError(t, err)
	_, _, _, err = applyNadGrids(c, DirForward, 0, 0, 0)
	assert.Error(t, err)
	cerr, ok := err.(*CRSError)
	assert.True(t, ok)
	assert.Equal(t, KindNadGridNotAvailable, cerr.Kind)
}

func TestCatalogMTFindAndConcurrentAdd(t *testing.T) {
	cat := NewCatalogMT()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cat.AddGrid(flatGrid("g", 0.0001*float64(i), 0))
		}(i)
	}
	wg.Wait()
	assert.Len(t, cat.All(), 8)

	g, ok := cat.Find("g")
	assert.True(t, ok)
	assert.Equal(t, "g", g.Name)
}

func TestCatalogMTFallsBackToBuilder(t *testing.T) {
	cat := NewCatalogMT()
	cat.SetBuilder(func(name string) (*Grid, bool) {
		if name == "lazy" {
			return flatGrid("lazy", 0, 0), true
		}
		return nil, false
	})
	g, ok := cat.Find("lazy")
	assert.True(t, ok)
	assert.Equal(t, "lazy", g.Name)

	_, ok = cat.Find("nope")
	assert.False(t, ok)
}

func TestCRSWithGridCatalogAppliesShift(t *testing.T) {
	c, err := NewCRS("+proj=longlat +ellps=clrk66 +nadgrids=mygrid")
	assert.NoError(t, err)
	cat := NewCatalog()
	cat.AddGrid(flatGrid("mygrid", 0.0001, -0.0002))
	c.SetGridCatalog(cat)

	lam, phi, _, err := applyNadGrids(c, DirForward, 0.3*d2r, 0.2*d2r, 0)
	assert.NoError(t, err)
	assert.NotEqual(t, 0.3*d2r, lam)
	assert.NotEqual(t, 0.2*d2r, phi)
}
