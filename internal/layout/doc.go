// Package layout defines the geometry types used by the cutout adjuster.
//
// Coordinates are float64 values in the device's logical coordinate space.
// A [Rect] with a non-positive or non-finite dimension is "absent"; callers
// normalize it to the zero Rect with [Rect.Normalize] instead of passing it on.
// Types are re-exported through the root notch package for public consumption.
package layout
