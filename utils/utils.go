package utils

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Alias for image.Rectangle.
type Rectangle = image.Rectangle

// Syntax sugar for [ebiten.Image.SubImage]() passing explicit
// coordinates instead of [image.Rectangle] and returning [*ebiten.Image]
// instead of [image.Image].
func SubImage(source *ebiten.Image, minX, minY, maxX, maxY int) *ebiten.Image {
	return source.SubImage(Rect(minX, minY, maxX, maxY)).(*ebiten.Image)
}

// Alias for [image.Rect]().
func Rect(minX, minY, maxX, maxY int) image.Rectangle {
	return image.Rect(minX, minY, maxX, maxY)
}

// Create a low resolution image from a simple mask. The value
// 0 is always reserved for transparent, and higher values will
// index the given colors. If no colors are given, 1 will be
// white by default. Example usage:
//
//	eye := utils.MaskToImage(5, []uint8{
//	    0, 1, 1, 1, 0,
//	    1, 1, 2, 1, 1,
//	    0, 1, 1, 1, 0,
//	}, utils.RGB(255, 255, 255), utils.RGB(0, 0, 0))
func MaskToImage(width int, mask []uint8, colors ...color.RGBA) *ebiten.Image {
	return ebiten.NewImageFromImage(MaskToRGBA(width, mask, colors...))
}

// Same as [MaskToImage](), but returning the CPU side image.
func MaskToRGBA(width int, mask []uint8, colors ...color.RGBA) *image.RGBA {
	// safety assertions
	if width <= 0 {
		panic("expected width > 0")
	}
	height := len(mask) / width
	if height*width != len(mask) {
		panic("given width can't split given mask into rows of equal length")
	}

	// no colors fallback
	if len(colors) == 0 {
		colors = []color.RGBA{{255, 255, 255, 255}}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for index, value := range mask {
		pixelIndex := index << 2
		if value != 0 {
			clr := colors[value-1]
			rgba.Pix[pixelIndex+0] = clr.R
			rgba.Pix[pixelIndex+1] = clr.G
			rgba.Pix[pixelIndex+2] = clr.B
			rgba.Pix[pixelIndex+3] = clr.A
		}
	}
	return rgba
}

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Returns [color.RGBA]{r, g, b, a} after checking that the
// given values constitute a valid premultiplied-alpha color
// (a >= r,g,b). On invalid colors, the function panics.
func RGBA(r, g, b, a uint8) color.RGBA {
	if r > a || g > a || b > a {
		panic("invalid color.RGBA values: premultiplied-alpha requires a >= r,g,b")
	}
	return color.RGBA{r, g, b, a}
}

// Converts a color to float32 RGBA values in [0, 1] range.
//
// This is the format that [ebiten.Vertex] expects.
func ColorToF32(clr color.Color) (r, g, b, a float32) {
	r16, g16, b16, a16 := clr.RGBA()
	return float32(r16) / 65535.0, float32(g16) / 65535.0, float32(b16) / 65535.0, float32(a16) / 65535.0
}

// Returns how much of a bar is filled for a weight in [lo, hi], in
// [0, 1].
func BarFill(weight, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return min(max((weight-lo)/(hi-lo), 0), 1)
}

// Draws a horizontal bar for a weight in [lo, hi]: the background
// rect, the filled part and, for domains crossing zero, a tick at
// the zero position.
func DrawWeightBar(target *ebiten.Image, bounds image.Rectangle, weight, lo, hi float64, back, fill color.Color) {
	x, y := float32(bounds.Min.X), float32(bounds.Min.Y)
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	vector.DrawFilledRect(target, x, y, w, h, back, false)
	vector.DrawFilledRect(target, x, y, w*float32(BarFill(weight, lo, hi)), h, fill, false)
	if lo < 0 && hi > 0 {
		zero := x + w*float32(BarFill(0, lo, hi))
		vector.StrokeLine(target, zero, y, zero, y+h, 1, color.White, false)
	}
}
