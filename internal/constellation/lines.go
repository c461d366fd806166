package constellation

import (
	"image/color"
	"math"

	"github.com/iburimskiy/constellation/internal/config"
)

// Link is a segment drawn between two points closer than the join distance.
type Link struct {
	X1, Y1, X2, Y2 float64
	Opacity        float64
}

func (l Link) Width() float64 {
	return config.MaxLineWidth * l.Opacity
}

// Opacity is 1 - d/join for d < join and ok is false otherwise.
func Opacity(d, join float64) (opacity float64, ok bool) {
	if d >= join {
		return 0, false
	}
	return clamp01(1 - d/join), true
}

// links visits every unordered pair once. Each pair would be drawn
// identically from either end, so visiting it twice only repeats paint.
func links(points []*Point, join float64, fn func(Link)) int {
	n := 0
	for i := 0; i < len(points); i++ {
		a := points[i]
		for j := i + 1; j < len(points); j++ {
			b := points[j]
			d := math.Hypot(b.X-a.X, b.Y-a.Y)
			o, ok := Opacity(d, join)
			if !ok {
				continue
			}
			fn(Link{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y, Opacity: o})
			n++
		}
	}
	return n
}

// withAlpha returns c with its alpha replaced by a in [0,1].
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(a) * 255))}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
