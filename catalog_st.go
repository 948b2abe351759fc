// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

// node is one entry of the catalog's append-only singly-linked list.
type node struct {
	grid *Grid
	next *node
}

// Catalog is the single-threaded nadgrid registry. Go has no implicit
// thread-local storage, so unlike proj4rs's thread_local! catalog, a
// Catalog here is an explicit value the caller threads through every
// transform it drives; sharing one across goroutines without synchronization
// is a data race by construction, same as sharing any other un-synchronized
// Go value. Use CatalogMT when grids must be shared across goroutines.
type Catalog struct {
	first   *node
	builder GridBuilder
}

// NewCatalog returns an empty single-threaded catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// SetBuilder installs the lazy-loader callback, returning whatever builder
// was previously installed (nil if none).
func (c *Catalog) SetBuilder(b GridBuilder) GridBuilder {
	old := c.builder
	c.builder = b
	return old
}

// AddGrid appends grid to the catalog.
func (c *Catalog) AddGrid(g *Grid) {
	n := &node{grid: g}
	if c.first == nil {
		c.first = n
		return
	}
	last := c.first
	for last.next != nil {
		last = last.next
	}
	last.next = n
}

// Find returns the named grid, first checking already-loaded grids, then
// falling back to the installed GridBuilder (and caching its result).
func (c *Catalog) Find(name string) (*Grid, bool) {
	for n := c.first; n != nil; n = n.next {
		if n.grid.Name == name {
			return n.grid, true
		}
	}
	if c.builder == nil {
		return nil, false
	}
	g, ok := c.builder(name)
	if !ok {
		return nil, false
	}
	c.AddGrid(g)
	return g, true
}

// All returns every grid currently loaded in the catalog.
func (c *Catalog) All() []*Grid {
	var out []*Grid
	for n := c.first; n != nil; n = n.next {
		out = append(out, n.grid)
	}
	return out
}
