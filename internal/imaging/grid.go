// Package imaging post-processes captured screenshots.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultGridSpacing is the distance between grid lines in logical pixels.
const DefaultGridSpacing = 100

// DrawGrid overlays a labeled coordinate grid onto a PNG screenshot so a
// caller can read off click coordinates directly from the image. spacing is
// in logical pixels; scale converts logical to image pixels (pass the
// controller's display scale factor). Returns a new PNG.
func DrawGrid(pngData []byte, spacing int, scale float64) ([]byte, error) {
	if spacing <= 0 {
		spacing = DefaultGridSpacing
	}
	if scale <= 0 {
		scale = 1.0
	}

	src, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}
	rgba := toRGBA(src)
	bounds := rgba.Bounds()

	lineColor := color.RGBA{R: 255, G: 0, B: 0, A: 90}
	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor := color.RGBA{R: 0, G: 0, B: 0, A: 220}

	// Vertical lines with x labels along the top edge.
	for lx := 0; ; lx += spacing {
		px := int(float64(lx) * scale)
		if px >= bounds.Dx() {
			break
		}
		drawVLine(rgba, px, lineColor)
		drawLabel(rgba, fmt.Sprintf("%d", lx), px+2, 12, textColor, outlineColor)
	}

	// Horizontal lines with y labels along the left edge.
	for ly := 0; ; ly += spacing {
		py := int(float64(ly) * scale)
		if py >= bounds.Dy() {
			break
		}
		drawHLine(rgba, py, lineColor)
		if ly > 0 {
			drawLabel(rgba, fmt.Sprintf("%d", ly), 2, py+12, textColor, outlineColor)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("failed to encode annotated screenshot: %w", err)
	}
	return buf.Bytes(), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func drawVLine(img *image.RGBA, x int, c color.Color) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X {
		return
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		blend(img, x, y, c)
	}
}

func drawHLine(img *image.RGBA, y int, c color.Color) {
	bounds := img.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		blend(img, x, y, c)
	}
}

// blend draws c over the existing pixel respecting its alpha.
func blend(img *image.RGBA, x, y int, c color.Color) {
	img.Set(x, y, blendColor(img.RGBAAt(x, y), c))
}

func blendColor(dst color.RGBA, src color.Color) color.RGBA {
	sr, sg, sb, sa := src.RGBA()
	a := float64(sa) / 0xffff
	return color.RGBA{
		R: uint8(float64(sr>>8)*a + float64(dst.R)*(1-a)),
		G: uint8(float64(sg>>8)*a + float64(dst.G)*(1-a)),
		B: uint8(float64(sb>>8)*a + float64(dst.B)*(1-a)),
		A: 255,
	}
}

// drawLabel draws text with a 1px outline for contrast on any background.
func drawLabel(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawText(img, text, x+dx, y+dy, outlineColor)
		}
	}
	drawText(img, text, x, y, textColor)
}

func drawText(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
