// Package ambience plays a quiet drone whose loudness follows how many
// points are joined on screen.
package ambience

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	baseFreq  = 110.0
	fifthFreq = 165.0
	maxGain   = 0.08
	// Fraction of the remaining distance to the target gain covered per sample.
	glide = 0.0005
	// Links per point at which the drone reaches full level.
	fullLinksPerPoint = 3
)

// Drone is a two-partial sine tone. Its level may be changed from the game
// loop while the speaker goroutine streams it.
type Drone struct {
	sr     beep.SampleRate
	phase  [2]float64
	gain   float64
	mu     sync.Mutex
	target float64
}

func NewDrone(sr beep.SampleRate) *Drone {
	return &Drone{sr: sr}
}

// SetLevel sets the target loudness in [0,1].
func (d *Drone) SetLevel(v float64) {
	d.mu.Lock()
	d.target = clamp01(v) * maxGain
	d.mu.Unlock()
}

func (d *Drone) Stream(samples [][2]float64) (int, bool) {
	d.mu.Lock()
	target := d.target
	d.mu.Unlock()

	rate := float64(d.sr)
	for i := range samples {
		d.gain += (target - d.gain) * glide
		v := 0.7*math.Sin(d.phase[0]) + 0.3*math.Sin(d.phase[1])
		v *= d.gain
		samples[i][0], samples[i][1] = v, v
		d.phase[0] = math.Mod(d.phase[0]+2*math.Pi*baseFreq/rate, 2*math.Pi)
		d.phase[1] = math.Mod(d.phase[1]+2*math.Pi*fifthFreq/rate, 2*math.Pi)
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }

// LevelFor maps a link count to a drone level.
func LevelFor(links, points int) float64 {
	if points <= 0 {
		return 0
	}
	return clamp01(float64(links) / float64(points*fullLinksPerPoint))
}

// Player owns the speaker while the drone is audible.
type Player struct {
	Drone *Drone
	ctrl  *beep.Ctrl

	clearSpeaker func()
	closeSpeaker func()
	stopped      bool
}

// Play initialises the speaker and starts the drone.
func Play(sr beep.SampleRate) (*Player, error) {
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	p := newPlayer(NewDrone(sr), speaker.Clear, speaker.Close)
	speaker.Play(p.ctrl)
	return p, nil
}

func newPlayer(d *Drone, clearSpeaker, closeSpeaker func()) *Player {
	return &Player{
		Drone:        d,
		ctrl:         &beep.Ctrl{Streamer: d},
		clearSpeaker: clearSpeaker,
		closeSpeaker: closeSpeaker,
	}
}

func (p *Player) ToggleMute() {
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	speaker.Unlock()
}

// Stop drops the drone and releases the audio device. Later calls do
// nothing. speaker.Clear takes the speaker lock itself.
func (p *Player) Stop() {
	if p.stopped {
		return
	}
	p.stopped = true
	p.clearSpeaker()
	p.closeSpeaker()
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
