package constellation

import "image/color"

type call struct {
	op             string
	x1, y1, x2, y2 float64
	width          float64
	c              color.Color
}

type recordingSurface struct {
	calls []call
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.calls = append(s.calls, call{op: "rect", x1: x, y1: y, x2: w, y2: h, c: c})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c color.Color) {
	s.calls = append(s.calls, call{op: "circle", x1: cx, y1: cy, width: r, c: c})
}

func (s *recordingSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.calls = append(s.calls, call{op: "line", x1: x1, y1: y1, x2: x2, y2: y2, width: width, c: c})
}

func (s *recordingSurface) ops(op string) []call {
	var out []call
	for _, c := range s.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (s *recordingSurface) reset() { s.calls = s.calls[:0] }

// manualHost queues frame callbacks until the test runs them.
type manualHost struct {
	width, height int
	next          FrameID
	frames        map[FrameID]func()
	resize        map[int]func(int, int)
	nextSub       int
	cancelled     []FrameID
}

func newManualHost(w, h int) *manualHost {
	return &manualHost{
		width:  w,
		height: h,
		frames: map[FrameID]func(){},
		resize: map[int]func(int, int){},
	}
}

func (h *manualHost) RequestFrame(fn func()) FrameID {
	h.next++
	h.frames[h.next] = fn
	return h.next
}

func (h *manualHost) CancelFrame(id FrameID) {
	h.cancelled = append(h.cancelled, id)
	delete(h.frames, id)
}

func (h *manualHost) OnResize(fn func(int, int)) func() {
	id := h.nextSub
	h.nextSub++
	h.resize[id] = fn
	return func() { delete(h.resize, id) }
}

func (h *manualHost) ViewportSize() (int, int) { return h.width, h.height }

// step runs every pending frame once.
func (h *manualHost) step() {
	pending := h.frames
	h.frames = map[FrameID]func(){}
	for _, fn := range pending {
		fn()
	}
}

func (h *manualHost) setSize(w, ht int) {
	h.width, h.height = w, ht
	for _, fn := range h.resize {
		fn(w, ht)
	}
}

// scriptedRand returns the given values in order, then 0.5.
type scriptedRand struct {
	vals []float64
}

func (r *scriptedRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.5
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v
}
