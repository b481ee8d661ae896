package haptic

import (
	"errors"
	"fmt"

	"github.com/hsiuhsiu/sdl3-go/pkg/sdl"
	"github.com/hsiuhsiu/sdl3-go/pkg/sdl/internal/backend"
)

// Kind is an effect type bit as reported by Haptic.Features.
type Kind uint32

const (
	KindConstant     = Kind(backend.HapticConstant)
	KindSine         = Kind(backend.HapticSine)
	KindSquare       = Kind(backend.HapticSquare)
	KindTriangle     = Kind(backend.HapticTriangle)
	KindSawtoothUp   = Kind(backend.HapticSawtoothUp)
	KindSawtoothDown = Kind(backend.HapticSawtoothDown)
	KindRamp         = Kind(backend.HapticRamp)
	KindSpring       = Kind(backend.HapticSpring)
	KindDamper       = Kind(backend.HapticDamper)
	KindInertia      = Kind(backend.HapticInertia)
	KindFriction     = Kind(backend.HapticFriction)
	KindLeftRight    = Kind(backend.HapticLeftRight)
	KindCustom       = Kind(backend.HapticCustom)
)

// Device feature bits, also reported by Haptic.Features.
const (
	FeatureGain       Kind = 1 << 16
	FeatureAutocenter Kind = 1 << 17
	FeatureStatus     Kind = 1 << 18
	FeaturePause      Kind = 1 << 19
)

// Infinity as an effect length plays the effect until stopped.
const Infinity uint32 = 0xFFFFFFFF

// ErrUnsupported is returned when the device lacks the effect kind or
// feature an operation needs.
var ErrUnsupported = errors.New("haptic: not supported by device")

// DirectionType selects how Direction.Dir is interpreted.
type DirectionType uint8

const (
	Polar DirectionType = iota
	Cartesian
	Spherical
	SteeringAxis
)

// Direction of an effect. Polar and spherical angles are in hundredths of a
// degree.
type Direction struct {
	Type DirectionType
	Dir  [3]int32
}

func (d Direction) validate() error {
	switch d.Type {
	case Polar:
		if d.Dir[0] < 0 || d.Dir[0] >= 36000 {
			return fmt.Errorf("%w: polar angle %d outside [0, 36000)", sdl.ErrInvalidArgument, d.Dir[0])
		}
	case Spherical:
		if d.Dir[0] < 0 || d.Dir[0] >= 36000 || d.Dir[1] < -9000 || d.Dir[1] > 9000 {
			return fmt.Errorf("%w: spherical angles %v out of range", sdl.ErrInvalidArgument, d.Dir[:2])
		}
	case Cartesian, SteeringAxis:
	default:
		return fmt.Errorf("%w: direction type %d", sdl.ErrInvalidArgument, d.Type)
	}
	return nil
}

func (d Direction) native() backend.HapticDirection {
	return backend.HapticDirection{Type: uint8(d.Type), Dir: d.Dir}
}

// Replay is the timing shared by every effect. Length is in milliseconds.
type Replay struct {
	Length uint32
	Delay  uint16
}

// Trigger starts the effect from a device button after Interval ms.
type Trigger struct {
	Button   uint16
	Interval uint16
}

// Envelope shapes the start and end of an effect.
type Envelope struct {
	AttackLength uint16
	AttackLevel  uint16
	FadeLength   uint16
	FadeLevel    uint16
}

// Effect is one of Constant, Periodic, Condition, Ramp or LeftRight.
type Effect interface {
	Kind() Kind
	validate() error
	native() backend.HapticEffect
}

func header(k Kind, d Direction, r Replay, t Trigger) backend.HapticEffect {
	return backend.HapticEffect{
		Type:      uint16(k),
		Direction: d.native(),
		Length:    r.Length,
		Delay:     r.Delay,
		Button:    t.Button,
		Interval:  t.Interval,
	}
}

func (e Envelope) apply(n *backend.HapticEffect) {
	n.AttackLength = e.AttackLength
	n.AttackLevel = e.AttackLevel
	n.FadeLength = e.FadeLength
	n.FadeLevel = e.FadeLevel
}

// Constant applies a constant force.
type Constant struct {
	Direction Direction
	Replay    Replay
	Trigger   Trigger
	Level     int16
	Envelope  Envelope
}

func (Constant) Kind() Kind { return KindConstant }

func (c Constant) validate() error { return c.Direction.validate() }

func (c Constant) native() backend.HapticEffect {
	n := header(KindConstant, c.Direction, c.Replay, c.Trigger)
	n.Level = c.Level
	c.Envelope.apply(&n)
	return n
}

// Periodic is a repeating wave. Wave must be one of KindSine, KindSquare,
// KindTriangle, KindSawtoothUp or KindSawtoothDown.
type Periodic struct {
	Wave      Kind
	Direction Direction
	Replay    Replay
	Trigger   Trigger
	Period    uint16
	Magnitude int16
	Offset    int16
	// Phase is the horizontal shift in hundredths of a degree.
	Phase    uint16
	Envelope Envelope
}

func (p Periodic) Kind() Kind { return p.Wave }

func (p Periodic) validate() error {
	switch p.Wave {
	case KindSine, KindSquare, KindTriangle, KindSawtoothUp, KindSawtoothDown:
	default:
		return fmt.Errorf("%w: periodic wave 0x%x", sdl.ErrInvalidArgument, uint32(p.Wave))
	}
	if p.Phase >= 36000 {
		return fmt.Errorf("%w: phase %d outside [0, 36000)", sdl.ErrInvalidArgument, p.Phase)
	}
	return p.Direction.validate()
}

func (p Periodic) native() backend.HapticEffect {
	n := header(p.Wave, p.Direction, p.Replay, p.Trigger)
	n.Period = p.Period
	n.Magnitude = p.Magnitude
	n.Offset = p.Offset
	n.Phase = p.Phase
	p.Envelope.apply(&n)
	return n
}

// Condition is an axis-bound effect. Kind must be one of KindSpring,
// KindDamper, KindInertia or KindFriction. Arrays hold one value per axis.
type Condition struct {
	Type       Kind
	Direction  Direction
	Replay     Replay
	Trigger    Trigger
	RightSat   [3]uint16
	LeftSat    [3]uint16
	RightCoeff [3]int16
	LeftCoeff  [3]int16
	Deadband   [3]uint16
	Center     [3]int16
}

func (c Condition) Kind() Kind { return c.Type }

func (c Condition) validate() error {
	switch c.Type {
	case KindSpring, KindDamper, KindInertia, KindFriction:
	default:
		return fmt.Errorf("%w: condition kind 0x%x", sdl.ErrInvalidArgument, uint32(c.Type))
	}
	return c.Direction.validate()
}

func (c Condition) native() backend.HapticEffect {
	n := header(c.Type, c.Direction, c.Replay, c.Trigger)
	n.RightSat = c.RightSat
	n.LeftSat = c.LeftSat
	n.RightCoeff = c.RightCoeff
	n.LeftCoeff = c.LeftCoeff
	n.Deadband = c.Deadband
	n.Center = c.Center
	return n
}

// Ramp moves linearly from Start to End over the replay length.
type Ramp struct {
	Direction Direction
	Replay    Replay
	Trigger   Trigger
	Start     int16
	End       int16
	Envelope  Envelope
}

func (Ramp) Kind() Kind { return KindRamp }

func (r Ramp) validate() error {
	if r.Replay.Length == Infinity {
		return fmt.Errorf("%w: ramp cannot run forever", sdl.ErrInvalidArgument)
	}
	return r.Direction.validate()
}

func (r Ramp) native() backend.HapticEffect {
	n := header(KindRamp, r.Direction, r.Replay, r.Trigger)
	n.Start = r.Start
	n.End = r.End
	r.Envelope.apply(&n)
	return n
}

// LeftRight drives the two rumble motors of a controller.
type LeftRight struct {
	Length         uint32
	LargeMagnitude uint16
	SmallMagnitude uint16
}

func (LeftRight) Kind() Kind { return KindLeftRight }

func (LeftRight) validate() error { return nil }

func (l LeftRight) native() backend.HapticEffect {
	return backend.HapticEffect{
		Type:           uint16(KindLeftRight),
		Length:         l.Length,
		LargeMagnitude: l.LargeMagnitude,
		SmallMagnitude: l.SmallMagnitude,
	}
}

// marshal validates e and flattens it for the backend.
func marshal(e Effect) (*backend.HapticEffect, error) {
	if e == nil {
		return nil, fmt.Errorf("%w: nil effect", sdl.ErrInvalidArgument)
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	n := e.native()
	return &n, nil
}
