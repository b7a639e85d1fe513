// Package export writes recorded display lists to image files without a
// window: PNG through the pure-Go software rasterizer of gogpu/gg, and SVG
// through ajstarks/svgo.
package export
