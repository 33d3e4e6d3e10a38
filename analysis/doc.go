// Package analysis computes summary statistics for mono sample buffers:
// level (peak, RMS, dBFS), duration and a coarse spectral description.
package analysis
