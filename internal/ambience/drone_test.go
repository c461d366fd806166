package ambience

import (
	"math"
	"testing"

	"github.com/faiface/beep"
)

func stream(d *Drone, n int) [][2]float64 {
	buf := make([][2]float64, n)
	got, ok := d.Stream(buf)
	if got != n || !ok {
		panic("drone stream ended")
	}
	return buf
}

func peak(buf [][2]float64) float64 {
	m := 0.0
	for _, s := range buf {
		m = math.Max(m, math.Abs(s[0]))
	}
	return m
}

func TestDroneSilentAtZeroLevel(t *testing.T) {
	d := NewDrone(beep.SampleRate(44100))
	if p := peak(stream(d, 4410)); p != 0 {
		t.Errorf("peak = %v, want silence", p)
	}
}

func TestDroneGlidesToLevel(t *testing.T) {
	d := NewDrone(beep.SampleRate(44100))
	d.SetLevel(1)
	first := peak(stream(d, 64))
	stream(d, 44100)
	settled := peak(stream(d, 4410))
	if first >= settled {
		t.Errorf("gain jumped: first peak %v, settled %v", first, settled)
	}
	if settled > maxGain+1e-9 || settled < maxGain*0.5 {
		t.Errorf("settled peak = %v, want near %v", settled, maxGain)
	}
	for _, s := range stream(d, 1024) {
		if s[0] != s[1] {
			t.Fatal("channels differ")
		}
	}
}

func TestSetLevelClamps(t *testing.T) {
	d := NewDrone(beep.SampleRate(44100))
	d.SetLevel(7)
	if d.target != maxGain {
		t.Errorf("target = %v, want %v", d.target, maxGain)
	}
	d.SetLevel(-1)
	if d.target != 0 {
		t.Errorf("target = %v, want 0", d.target)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		links, points int
		want          float64
	}{
		{0, 0, 0},
		{10, 0, 0},
		{0, 120, 0},
		{180, 120, 0.5},
		{1000, 120, 1},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.links, tt.points); got != tt.want {
			t.Errorf("LevelFor(%d, %d) = %v, want %v", tt.links, tt.points, got, tt.want)
		}
	}
}

func TestStopReleasesSpeakerOnce(t *testing.T) {
	var calls []string
	p := newPlayer(NewDrone(beep.SampleRate(44100)),
		func() { calls = append(calls, "clear") },
		func() { calls = append(calls, "close") },
	)
	p.Stop()
	p.Stop()
	if len(calls) != 2 || calls[0] != "clear" || calls[1] != "close" {
		t.Errorf("speaker calls = %v, want [clear close]", calls)
	}
}
