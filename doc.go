// Package pixmath provides in-memory pixel containers and pixel math for scientific and HDR imaging.
//
// Bitmap is generic over the sample type (uint8, uint16, uint32, uint64, float64) and supports
// per-pixel access, region statistics, drawing, saturating arithmetic and a window/level plus
// gamma/log conversion to 8-bit display buffers. Image wraps the five typed containers behind a
// single value dispatched by the signed depth tag.
package pixmath
