package config

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	AmbienceSampleRate = 44100

	// Stroke width of a line at full opacity.
	MaxLineWidth = 5
)

// ErrInvalid is returned (wrapped) by Validate and ParseColor.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the visual constants of the constellation. It is passed by
// value and never changed once the driver is built.
type Config struct {
	BackgroundColor color.RGBA
	PointColor      color.RGBA
	PointRadius     float64
	PointCount      int
	MaxSpeed        float64
	JoinDistance    float64
}

func Default() Config {
	return Config{
		BackgroundColor: color.RGBA{R: 17, G: 17, B: 19, A: 255},
		PointColor:      color.RGBA{R: 153, G: 102, B: 204, A: 255},
		PointRadius:     5,
		PointCount:      120,
		MaxSpeed:        0.5,
		JoinDistance:    150,
	}
}

func (c Config) Validate() error {
	switch {
	case !finite(c.JoinDistance), !finite(c.MaxSpeed), !finite(c.PointRadius):
		return errors.Wrapf(ErrInvalid, "join %v, speed %v and radius %v must be finite",
			c.JoinDistance, c.MaxSpeed, c.PointRadius)
	case c.PointCount < 0:
		return errors.Wrapf(ErrInvalid, "point count %d is negative", c.PointCount)
	case c.JoinDistance <= 0:
		return errors.Wrapf(ErrInvalid, "join distance %v must be positive", c.JoinDistance)
	case c.MaxSpeed < 0:
		return errors.Wrapf(ErrInvalid, "max speed %v is negative", c.MaxSpeed)
	case c.PointRadius < 0:
		return errors.Wrapf(ErrInvalid, "point radius %v is negative", c.PointRadius)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ParseColor parses "#rrggbb" or "rrggbb" into an opaque colour.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, errors.Wrapf(ErrInvalid, "colour %q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(ErrInvalid, "colour %q: %v", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Opaque converts any colour to an opaque RGBA, dropping its alpha.
func Opaque(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}
