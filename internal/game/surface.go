package game

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Surface paints onto the screen image of the current Draw. Calls made
// outside Draw, or on a nil *Surface, are dropped.
type Surface struct {
	target   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if s == nil || s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if s == nil || s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), c, true)
}

// StrokeLine draws a round-capped segment. vector.StrokeLine only does
// butt caps, so the stroke is tessellated from a path.
func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	if s == nil || s.target == nil {
		return
	}
	s.vertices, s.indices = appendStroke(s.vertices[:0], s.indices[:0], x1, y1, x2, y2, width, c)
	if len(s.indices) == 0 {
		return
	}
	s.target.DrawTriangles(s.vertices, s.indices, white(), strokeOptions())
}

// appendStroke tessellates a round-capped segment and colours every vertex
// with c's premultiplied components, sampling the centre of the white image.
func appendStroke(vs []ebiten.Vertex, is []uint16, x1, y1, x2, y2, width float64, c color.Color) ([]ebiten.Vertex, []uint16) {
	if width <= 0 {
		return vs, is
	}
	var path vector.Path
	path.MoveTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	start := len(vs)
	vs, is = path.AppendVerticesAndIndicesForStroke(vs, is, &vector.StrokeOptions{
		Width:   float32(width),
		LineCap: vector.LineCapRound,
	})

	r, g, b, a := c.RGBA()
	for i := start; i < len(vs); i++ {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	return vs, is
}

// Vertex colours come from color.Color.RGBA, which is premultiplied.
func strokeOptions() *ebiten.DrawTrianglesOptions {
	return &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
}
