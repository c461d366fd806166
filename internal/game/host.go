package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/constellation/internal/constellation"
)

var (
	_ ebiten.Game           = (*Host)(nil)
	_ constellation.Host    = (*Host)(nil)
	_ constellation.Surface = (*Surface)(nil)
)

type frame struct {
	id constellation.FrameID
	fn func()
}

// Host drives frame callbacks from ebiten's Draw and turns Layout changes
// into resize notifications. It implements both ebiten.Game and
// constellation.Host.
type Host struct {
	width, height int

	nextID   constellation.FrameID
	queue    []frame
	inflight []frame

	subs    map[int]func(int, int)
	nextSub int

	surface *Surface
	keys    map[ebiten.Key]func()

	// AfterFrame runs after the frame callbacks of every Draw.
	AfterFrame func()
	// Status feeds the debug overlay.
	Status  func() string
	overlay bool
	started time.Time
}

func NewHost(width, height int) *Host {
	h := &Host{
		width:   width,
		height:  height,
		subs:    map[int]func(int, int){},
		surface: &Surface{},
		keys:    map[ebiten.Key]func(){},
		started: time.Now(),
	}
	h.HandleKey(ebiten.KeyD, func() { h.overlay = !h.overlay })
	return h
}

func (h *Host) Surface() *Surface { return h.surface }

func (h *Host) SetOverlay(on bool) { h.overlay = on }

// HandleKey runs fn when key is pressed.
func (h *Host) HandleKey(key ebiten.Key, fn func()) { h.keys[key] = fn }

func (h *Host) RequestFrame(fn func()) constellation.FrameID {
	h.nextID++
	h.queue = append(h.queue, frame{id: h.nextID, fn: fn})
	return h.nextID
}

// Mount runs start during the first Draw, once the screen is bound to the
// surface. Frames start requests wait for the following Draw.
func (h *Host) Mount(start func()) constellation.FrameID {
	return h.RequestFrame(start)
}

func (h *Host) CancelFrame(id constellation.FrameID) {
	h.queue = removeFrame(h.queue, id)
	for i := range h.inflight {
		if h.inflight[i].id == id {
			h.inflight[i].fn = nil
		}
	}
}

func removeFrame(frames []frame, id constellation.FrameID) []frame {
	for i := range frames {
		if frames[i].id == id {
			return append(frames[:i], frames[i+1:]...)
		}
	}
	return frames
}

func (h *Host) OnResize(fn func(width, height int)) func() {
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	return func() { delete(h.subs, id) }
}

func (h *Host) ViewportSize() (int, int) { return h.width, h.height }

// runFrames runs the callbacks queued before this call. Callbacks queued
// while running wait for the next call.
func (h *Host) runFrames() {
	h.inflight, h.queue = h.queue, nil
	for i := range h.inflight {
		if fn := h.inflight[i].fn; fn != nil {
			h.inflight[i].fn = nil
			fn()
		}
	}
	h.inflight = nil
}

func (h *Host) resize(width, height int) {
	if width <= 0 || height <= 0 || (width == h.width && height == h.height) {
		return
	}
	h.width, h.height = width, height
	for _, fn := range h.subs {
		fn(width, height)
	}
}

func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for key, fn := range h.keys {
		if inpututil.IsKeyJustPressed(key) {
			fn()
		}
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.target = screen
	h.runFrames()
	if h.AfterFrame != nil {
		h.AfterFrame()
	}
	if h.overlay {
		h.drawOverlay(screen)
	}
}

func (h *Host) drawOverlay(screen *ebiten.Image) {
	status := fmt.Sprintf("FPS %.1f  TPS %.1f  %s", ebiten.ActualFPS(), ebiten.ActualTPS(), formatDuration(time.Since(h.started)))
	if h.Status != nil {
		status += "  " + h.Status()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.resize(outsideWidth, outsideHeight)
	return h.width, h.height
}
