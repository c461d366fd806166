package constellation

import "github.com/iburimskiy/constellation/internal/config"

// Point is a dot drifting across the surface.
type Point struct {
	X, Y   float64
	VX, VY float64
	cfg    config.Config
}

// NewPoint places a point uniformly in [0,width)x[0,height) with each
// velocity axis drawn from [-MaxSpeed, MaxSpeed].
func NewPoint(width, height int, cfg config.Config, r Rand) *Point {
	return &Point{
		X:   r.Float64() * float64(width),
		Y:   r.Float64() * float64(height),
		VX:  r.Float64()*cfg.MaxSpeed*2 - cfg.MaxSpeed,
		VY:  r.Float64()*cfg.MaxSpeed*2 - cfg.MaxSpeed,
		cfg: cfg,
	}
}

// Advance bounces off the edges and then moves one step. Bounds are
// checked, not clamped, so a point may overshoot by one step.
func (p *Point) Advance(width, height int) {
	if p.X >= float64(width) || p.X <= 1 {
		p.VX = -p.VX
	}
	if p.Y >= float64(height) || p.Y <= 1 {
		p.VY = -p.VY
	}
	p.X += p.VX
	p.Y += p.VY
}

func (p *Point) Render(s Surface) {
	s.FillCircle(p.X, p.Y, p.cfg.PointRadius, p.cfg.PointColor)
}
