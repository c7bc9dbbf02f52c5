// Package texture procedurally paints the fixed set of Mega Knights pixel
// art assets: entity skins, armor model textures, and item icons. Every
// painter is a bespoke per-asset procedure over hard-coded coordinate
// tables; output is deterministic down to the pixel.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Transparent is the cleared-canvas color.
var Transparent = color.RGBA{}

// NewCanvas returns a fully transparent RGBA image of the given size.
func NewCanvas(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// Set writes one pixel.
func Set(img *image.RGBA, x, y int, c color.RGBA) {
	img.SetRGBA(x, y, c)
}

// Fill paints a solid rectangle.
func Fill(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}

// HLine paints n pixels rightward from (x, y).
func HLine(img *image.RGBA, x, y, n int, c color.RGBA) {
	for i := 0; i < n; i++ {
		img.SetRGBA(x+i, y, c)
	}
}

// VLine paints n pixels downward from (x, y).
func VLine(img *image.RGBA, x, y, n int, c color.RGBA) {
	for i := 0; i < n; i++ {
		img.SetRGBA(x, y+i, c)
	}
}

// Shade paints a top-left lit face: highlight on the top and left edges,
// shadow on the bottom and right.
func Shade(img *image.RGBA, x, y, w, h int, base, hi, lo color.RGBA) {
	Fill(img, x, y, w, h, base)
	for i := 0; i < w; i++ {
		img.SetRGBA(x+i, y, hi)
	}
	for i := 1; i < h-1; i++ {
		img.SetRGBA(x, y+i, hi)
	}
	for i := 0; i < w; i++ {
		img.SetRGBA(x+i, y+h-1, lo)
	}
	for i := 1; i < h-1; i++ {
		img.SetRGBA(x+w-1, y+i, lo)
	}
}

// dither paints a checkerboard of base and lo, keyed on absolute pixel
// parity so adjacent regions mesh.
func dither(img *image.RGBA, x, y, w, h int, base, lo color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			if (px+py)%2 == 0 {
				img.SetRGBA(px, py, base)
			} else {
				img.SetRGBA(px, py, lo)
			}
		}
	}
}

// WritePNG encodes the image to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
