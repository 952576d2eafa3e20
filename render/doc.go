// Package render paints game frames into an RGB565 pixel buffer.
//
// The target is caller-provided (buffer, stride, size) so the package needs
// no HAL. Text goes through tinyfont via a drivers.Displayer adapter.
package render
