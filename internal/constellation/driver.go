// Package constellation animates drifting points joined by fading lines.
package constellation

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/iburimskiy/constellation/internal/config"
)

var (
	ErrNoSurface = errors.New("constellation: no drawing surface")
	ErrNoHost    = errors.New("constellation: no host")
)

// Stats describes the most recent tick.
type Stats struct {
	Points int
	Links  int
	Frames uint64
}

// Driver owns the points and redraws them once per frame.
type Driver struct {
	surface Surface
	host    Host
	cfg     config.Config
	rng     Rand
	log     *slog.Logger

	width, height int
	points        []*Point

	pending     FrameID
	unsubscribe func()
	started     bool
	disposed    bool

	stats Stats
}

type Option func(*Driver)

func WithConfig(cfg config.Config) Option { return func(d *Driver) { d.cfg = cfg } }

func WithRand(r Rand) Option { return func(d *Driver) { d.rng = r } }

func WithLogger(l *slog.Logger) Option { return func(d *Driver) { d.log = l } }

// New captures the viewport size and subscribes to resizes. It fails
// without side effects when the surface or host is missing. Only a nil
// interface counts as missing: a Surface holding a nil pointer is passed
// through, so its methods must accept a nil receiver.
func New(surface Surface, host Host, opts ...Option) (*Driver, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if host == nil {
		return nil, ErrNoHost
	}
	d := &Driver{
		surface: surface,
		host:    host,
		cfg:     config.Default(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "constellation")
	}
	d.width, d.height = host.ViewportSize()
	d.points = make([]*Point, 0, d.cfg.PointCount)
	d.unsubscribe = host.OnResize(d.HandleResize)
	return d, nil
}

// Init seeds the points and starts the frame loop. Later calls do nothing.
func (d *Driver) Init() {
	if d.started || d.disposed {
		return
	}
	d.started = true
	for i := 0; i < d.cfg.PointCount; i++ {
		d.points = append(d.points, NewPoint(d.width, d.height, d.cfg, d.rng))
	}
	d.log.Debug("constellation started", "points", len(d.points), "width", d.width, "height", d.height)
	d.tick()
}

func (d *Driver) tick() {
	if d.disposed {
		return
	}
	d.pending = d.host.RequestFrame(d.tick)
	d.redraw()
}

func (d *Driver) redraw() {
	d.surface.FillRect(0, 0, float64(d.width), float64(d.height), d.cfg.BackgroundColor)
	for _, p := range d.points {
		p.Render(d.surface)
		p.Advance(d.width, d.height)
	}
	n := links(d.points, d.cfg.JoinDistance, func(l Link) {
		d.surface.StrokeLine(l.X1, l.Y1, l.X2, l.Y2, l.Width(), withAlpha(d.cfg.PointColor, l.Opacity))
	})
	d.stats = Stats{Points: len(d.points), Links: n, Frames: d.stats.Frames + 1}
}

// HandleResize records the new viewport. Points are left where they are.
func (d *Driver) HandleResize(width, height int) {
	if width == d.width && height == d.height {
		return
	}
	d.width, d.height = width, height
	d.log.Debug("viewport resized", "width", width, "height", height)
}

// Dispose unsubscribes from resizes and cancels the pending frame. It is
// safe to call more than once.
func (d *Driver) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	if d.pending != 0 {
		d.host.CancelFrame(d.pending)
		d.pending = 0
	}
	d.log.Debug("constellation disposed", "frames", d.stats.Frames)
}

func (d *Driver) Size() (width, height int) { return d.width, d.height }

func (d *Driver) Config() config.Config { return d.cfg }

func (d *Driver) Stats() Stats { return d.stats }

// Points returns copies of the current points.
func (d *Driver) Points() []Point {
	out := make([]Point, len(d.points))
	for i, p := range d.points {
		out[i] = *p
	}
	return out
}
