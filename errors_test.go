// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRSErrorMessageIncludesDetail(t *testing.T) {
	err := newErr(KindInvalidUTMZone, "zone %d out of range", 99)
	assert.Equal(t, "invalid UTM zone: zone 99 out of range", err.Error())
}

func TestCRSErrorMessageFallsBackToKindOnly(t *testing.T) {
	err := &CRSError{Kind: KindMissingProj}
	assert.Equal(t, KindMissingProj.String(), err.Error())
}

func TestCRSErrorIsMatchesOnKindAlone(t *testing.T) {
	err := newErr(KindInvalidDatum, "datum %q not found", "bogus")
	assert.True(t, errors.Is(err, &CRSError{Kind: KindInvalidDatum}))
	assert.False(t, errors.Is(err, &CRSError{Kind: KindInvalidEllipsoid}))
}

func TestCRSErrorAsExtractsKind(t *testing.T) {
	var err error = newErr(KindEllipsoidRequired, "ups needs an ellipsoid")
	var target *CRSError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, KindEllipsoidRequired, target.Kind)
}

func TestUnknownKindStringsToUnknown(t *testing.T) {
	assert.Equal(t, "unknown error", Kind(-1).String())
}
