// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crs

import "fmt"

// Kind classifies a CRSError into the flat taxonomy used across parsing,
// construction, and transform.
type Kind int

const (
	KindUnknown Kind = iota

	// Parsing
	KindInputString
	KindMissingValue
	KindUnterminatedQuote
	KindInvalidIdentifier

	// Configuration
	KindMissingProj
	KindUnsupportedProj
	KindInvalidDatum
	KindInvalidEllipsoid
	KindInvalidAxis
	KindInvalidUTMZone
	KindEllipsoidRequired
	KindInvalidParameterValue
	KindNadGridNotAvailable

	// Domain
	KindLatitudeOutOfRange
	KindCoordinateOutOfRange
	KindLatOrLongExceedLimit
	KindPointOutsideNadShiftArea

	// Convergence
	KindNonInvPhi2Convergence
	KindInvMlfnConvergence
	KindInverseGridShiftConv
	KindToleranceCondition

	// Structural
	KindNoForwardProjectionDefined
	KindNoInverseProjectionDefined
	KindCoordTransOutsideProjectionDomain
	KindProjErrConicLatEqual
	KindNaNCoordinate
	KindArgumentTooLarge

	// IO / format (external grid loaders)
	KindGridFileNotFound
	KindUnknownGridFormat
	KindInvalidNTv2Header
	KindGridSizeMismatch
	KindUTF8Error
	KindIOError
)

var kindNames = map[Kind]string{
	KindUnknown:                           "unknown",
	KindInputString:                       "invalid input string",
	KindMissingValue:                      "missing value for parameter",
	KindUnterminatedQuote:                 "unterminated quoted value",
	KindInvalidIdentifier:                 "invalid parameter identifier",
	KindMissingProj:                       "missing +proj parameter",
	KindUnsupportedProj:                   "unsupported projection",
	KindInvalidDatum:                      "invalid or unrecognized datum",
	KindInvalidEllipsoid:                  "invalid or unrecognized ellipsoid",
	KindInvalidAxis:                       "invalid axis specification",
	KindInvalidUTMZone:                    "invalid UTM zone",
	KindEllipsoidRequired:                 "ellipsoid required",
	KindInvalidParameterValue:             "invalid parameter value",
	KindNadGridNotAvailable:               "required nadgrid not available",
	KindLatitudeOutOfRange:                "latitude out of range",
	KindCoordinateOutOfRange:              "coordinate out of range",
	KindLatOrLongExceedLimit:              "latitude or longitude exceeds limit",
	KindPointOutsideNadShiftArea:          "point outside nadgrid shift area",
	KindNonInvPhi2Convergence:             "phi2 did not converge",
	KindInvMlfnConvergence:                "inverse meridional distance did not converge",
	KindInverseGridShiftConv:              "inverse grid shift did not converge",
	KindToleranceCondition:                "tolerance condition failed",
	KindNoForwardProjectionDefined:        "no forward projection defined",
	KindNoInverseProjectionDefined:        "no inverse projection defined",
	KindCoordTransOutsideProjectionDomain: "coordinate transform outside projection domain",
	KindProjErrConicLatEqual:              "conic projection standard parallels cancel out",
	KindNaNCoordinate:                     "NaN coordinate",
	KindArgumentTooLarge:                  "argument too large for clamped inverse trig",
	KindGridFileNotFound:                  "grid file not found",
	KindUnknownGridFormat:                 "unknown grid file format",
	KindInvalidNTv2Header:                 "invalid NTv2 header",
	KindGridSizeMismatch:                  "grid size mismatch",
	KindUTF8Error:                         "invalid UTF-8 in grid file",
	KindIOError:                           "I/O error reading grid file",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown error"
}

// CRSError is the single error type returned by this package. It carries a
// Kind for programmatic dispatch (errors.Is/errors.As) plus a free-form
// message with call-specific detail.
type CRSError struct {
	Kind Kind
	Msg  string
}

func (e *CRSError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is lets errors.Is(err, &CRSError{Kind: KindX}) match on Kind alone.
func (e *CRSError) Is(target error) bool {
	t, ok := target.(*CRSError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newErr(k Kind, format string, args ...interface{}) *CRSError {
	return &CRSError{Kind: k, Msg: fmt.Sprintf(format, args...)}
}
