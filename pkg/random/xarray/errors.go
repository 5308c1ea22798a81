package xarray

import "github.com/omeyang/xrandom/pkg/random/xrerr"

var (
	errNegativeShape = xrerr.Shape("shape must be non-negative")
	errStrideRank    = xrerr.Shape("strides must have the same rank as shape")
	errOutOfBounds   = xrerr.Shape("layout exceeds the bounds of the backing data")
	errDataLength    = xrerr.Shape("data length does not match shape")
	errBadStep       = xrerr.Shape("slice step must be > 0")
	errBadAxis       = xrerr.Shape("axis out of range")
	errBadRange      = xrerr.Shape("slice bounds out of range")
	errTooLarge      = xrerr.Shape("array is too big")
	errUnsupported   = xrerr.TypeMismatch("unsupported array implementation")
)
