// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"sync"
	"sync/atomic"
)

// mtNode is one entry of the lock-free read list shared by CatalogMT.
type mtNode struct {
	grid *Grid
	next atomic.Pointer[mtNode]
}

// CatalogMT is the multi-threaded counterpart of Catalog: insertion is
// serialized by a mutex and the builder is swapped in with an atomic
// store, while lookups walk an
// atomic.Pointer-linked list without taking any lock, so concurrent
// transforms never block each other on grid lookup.
type CatalogMT struct {
	mu      sync.Mutex
	first   atomic.Pointer[mtNode]
	builder atomic.Pointer[GridBuilder]
}

// NewCatalogMT returns an empty thread-safe catalog.
func NewCatalogMT() *CatalogMT {
	return &CatalogMT{}
}

// SetBuilder installs the lazy-loader callback used on a lookup miss.
func (c *CatalogMT) SetBuilder(b GridBuilder) {
	c.builder.Store(&b)
}

// AddGrid appends grid to the catalog under the write lock.
func (c *CatalogMT) AddGrid(g *Grid) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := &mtNode{grid: g}
	last := c.first.Load()
	if last == nil {
		c.first.Store(n)
		return
	}
	for last.next.Load() != nil {
		last = last.next.Load()
	}
	last.next.Store(n)
}

// Find walks the lock-free list, then falls back to the installed builder
// (taking the write lock only to append the freshly-built grid).
func (c *CatalogMT) Find(name string) (*Grid, bool) {
	for n := c.first.Load(); n != nil; n = n.next.Load() {
		if n.grid.Name == name {
			return n.grid, true
		}
	}
	bp := c.builder.Load()
	if bp == nil {
		return nil, false
	}
	g, ok := (*bp)(name)
	if !ok {
		return nil, false
	}
	c.AddGrid(g)
	return g, true
}

// All returns a snapshot of every grid currently loaded.
func (c *CatalogMT) All() []*Grid {
	var out []*Grid
	for n := c.first.Load(); n != nil; n = n.next.Load() {
		out = append(out, n.grid)
	}
	return out
}
