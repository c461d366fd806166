package constellation

import "image/color"

// Surface is the 2D target a tick paints on.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	// StrokeLine draws a round-capped segment.
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
}

// FrameID identifies a requested frame callback. Zero is never issued.
type FrameID uint64

// Host schedules frames and reports viewport changes. Callbacks are
// serialized with each other by the host.
type Host interface {
	// RequestFrame runs fn once before the next repaint.
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
	// OnResize subscribes fn to viewport changes. The returned func
	// unsubscribes and may be called more than once.
	OnResize(fn func(width, height int)) (unsubscribe func())
	ViewportSize() (width, height int)
}

// Rand is the random source used to seed points.
type Rand interface {
	Float64() float64
}
