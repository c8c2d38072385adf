package pixmath

import "errors"

var (
	// ErrUnsupportedChannels is returned for channel counts other than 1, 3 or 4.
	ErrUnsupportedChannels = errors.New("unsupported number of channels")
	// ErrUnsupportedDepth is returned for depth tags outside 1, 2, 4, 8, -8.
	ErrUnsupportedDepth = errors.New("unsupported image depth")
	// ErrGeometryMismatch is returned when two containers must share width, height, channels and depth.
	ErrGeometryMismatch = errors.New("geometry mismatch")
	// ErrAlphaChannelAbsent is returned when a non-opaque alpha is written to a container without alpha.
	ErrAlphaChannelAbsent = errors.New("alpha channel absent")
	// ErrMissingKey is returned when a marshalling bundle lacks a required key.
	ErrMissingKey = errors.New("missing required key")
	// ErrInvalidParam is returned for malformed parameter values.
	ErrInvalidParam = errors.New("invalid parameter")
	// ErrEmptyImage is returned by operations that need pixel data.
	ErrEmptyImage = errors.New("image is empty")
	// ErrEmptyRegion is returned when a region is empty after clamping to the image.
	ErrEmptyRegion = errors.New("empty region")
	// ErrBufferTooSmall is returned when wrapped memory cannot hold the declared geometry.
	ErrBufferTooSmall = errors.New("buffer too small")
	// ErrInvalidDistribution is returned when a radial profile cannot be indexed or normalized.
	ErrInvalidDistribution = errors.New("invalid distribution")
)
