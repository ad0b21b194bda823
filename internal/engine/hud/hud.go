// Package hud rasterizes the blueprint overlay into an image that the
// renderer draws as a screen-space quad.
package hud

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hydroavia/showcase/internal/viewer"
	"github.com/hydroavia/showcase/pkg/math"
)

// LineGap is the vertical space between text lines, in pixels.
const LineGap = 4

// Face is the bitmap font used for HUD text.
var Face font.Face = basicfont.Face7x13

// Placement is one positioned line of text.
type Placement struct {
	Text     string
	Color    math.RGB
	X        int // left edge of the text
	Baseline int
	Width    int
}

// Layout positions the HUD text for a viewport of the given size. Top-left
// lines grow downward from the margin; bottom-right lines are right aligned
// and stack upward so the last line sits on the bottom margin.
func Layout(h *viewer.HUD, width, height int) []Placement {
	if h == nil {
		return nil
	}
	m := Face.Metrics()
	ascent, lineHeight := m.Ascent.Ceil(), m.Height.Ceil()
	step := lineHeight + LineGap
	margin := int(h.Margin)

	out := make([]Placement, 0, len(h.TopLeft)+len(h.BottomRight))
	for i, l := range h.TopLeft {
		out = append(out, Placement{
			Text:     l.Text,
			Color:    l.Color,
			X:        margin,
			Baseline: margin + i*step + ascent,
			Width:    font.MeasureString(Face, l.Text).Ceil(),
		})
	}

	top := height - margin - (len(h.BottomRight)*step - LineGap)
	for i, l := range h.BottomRight {
		w := font.MeasureString(Face, l.Text).Ceil()
		out = append(out, Placement{
			Text:     l.Text,
			Color:    l.Color,
			X:        width - margin - w,
			Baseline: top + i*step + ascent,
			Width:    w,
		})
	}
	return out
}

// Render draws the HUD into a transparent, premultiplied RGBA image.
func Render(h *viewer.HUD, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if h == nil {
		return img
	}

	drawBrackets(img, h.Brackets)

	d := font.Drawer{Dst: img, Face: Face}
	for _, p := range Layout(h, width, height) {
		d.Src = image.NewUniform(toColor(p.Color, 1))
		d.Dot = fixed.P(p.X, p.Baseline)
		d.DrawString(p.Text)
	}
	return img
}

// drawBrackets draws an L-shaped mark flush with each corner.
func drawBrackets(img *image.RGBA, b viewer.Brackets) {
	size, t := int(b.Size), int(b.Thickness)
	if size <= 0 || t <= 0 {
		return
	}
	src := image.NewUniform(toColor(b.Color, b.Opacity))
	r := img.Bounds()

	corners := []struct{ x0, y0, dx, dy int }{
		{r.Min.X, r.Min.Y, 1, 1},
		{r.Max.X, r.Min.Y, -1, 1},
		{r.Min.X, r.Max.Y, 1, -1},
		{r.Max.X, r.Max.Y, -1, -1},
	}
	for _, c := range corners {
		horiz := rectFrom(c.x0, c.y0, c.dx*size, c.dy*t)
		vert := rectFrom(c.x0, c.y0+c.dy*t, c.dx*t, c.dy*(size-t))
		draw.Draw(img, horiz, src, image.Point{}, draw.Over)
		draw.Draw(img, vert, src, image.Point{}, draw.Over)
	}
}

// rectFrom builds a rectangle from a corner and signed extents.
func rectFrom(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h).Canon()
}

func toColor(c math.RGB, alpha float32) color.NRGBA {
	return color.NRGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: uint8(alpha*255 + 0.5),
	}
}

// Cache re-renders the overlay only when the viewport or text changes.
type Cache struct {
	key string
	img *image.RGBA
}

// Image returns the overlay image and whether it was re-rendered.
func (c *Cache) Image(h *viewer.HUD, width, height int) (*image.RGBA, bool) {
	key := cacheKey(h, width, height)
	if c.img != nil && key == c.key {
		return c.img, false
	}
	c.key, c.img = key, Render(h, width, height)
	return c.img, true
}

func cacheKey(h *viewer.HUD, width, height int) string {
	var sb strings.Builder
	sb.WriteString(image.Pt(width, height).String())
	if h != nil {
		for _, l := range append(append([]viewer.HUDLine(nil), h.TopLeft...), h.BottomRight...) {
			sb.WriteByte('|')
			sb.WriteString(l.Text)
		}
	}
	return sb.String()
}
