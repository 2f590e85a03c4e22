// Package ansipal maps arbitrary 24-bit sRGB colors to the nearest entry in
// the xterm 256-color (and 88-color) terminal palette.
//
// The search happens in Oklab space for perceptual accuracy, backed by a
// lock-free cache so that repeated lookups of the same color (the common
// case for terminal output, which reuses a handful of colors heavily) are
// nearly free. Every public entry point is a pure function of its (r, g, b)
// input modulo the cache, which only affects performance, never the
// answer.
package ansipal
