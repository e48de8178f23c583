package animations

import (
	"time"

	"github.com/nsgo-dev/nsgo/pkg/view"
)

// Keyframe maps normalized style properties to values.
type Keyframe map[string]string

// Player controls one running animation.
type Player interface {
	Play()
	Finish()
	Destroy()
	HasStarted() bool
	OnDone(fn func())
}

// Driver plays keyframe animations on views.
type Driver interface {
	ValidateStyleProperty(prop string) bool
	Animate(target *view.View, keyframes []Keyframe, duration, delay time.Duration, easing string) Player
}

// nativeProps are the properties the native toolkit can animate.
var nativeProps = map[string]bool{
	"opacity":         true,
	"backgroundColor": true,
	"translateX":      true,
	"translateY":      true,
	"scaleX":          true,
	"scaleY":          true,
	"rotate":          true,
	"width":           true,
	"height":          true,
}

// NativeDriver animates native views.
type NativeDriver struct{}

// NewNativeDriver returns a NativeDriver.
func NewNativeDriver() *NativeDriver {
	return &NativeDriver{}
}

// ValidateStyleProperty reports whether prop can be animated natively.
func (NativeDriver) ValidateStyleProperty(prop string) bool {
	return nativeProps[prop]
}

// Animate returns a player for target. Nothing runs until Play.
func (NativeDriver) Animate(target *view.View, keyframes []Keyframe, duration, delay time.Duration, easing string) Player {
	return &nativePlayer{
		target:    target,
		keyframes: keyframes,
		duration:  duration,
		delay:     delay,
		easing:    easing,
	}
}

type nativePlayer struct {
	target    *view.View
	keyframes []Keyframe
	duration  time.Duration
	delay     time.Duration
	easing    string

	started   bool
	finished  bool
	destroyed bool
	onDone    []func()
}

func (p *nativePlayer) Play() {
	p.started = true
}

func (p *nativePlayer) HasStarted() bool {
	return p.started
}

func (p *nativePlayer) OnDone(fn func()) {
	p.onDone = append(p.onDone, fn)
}

// Finish applies the last keyframe to the target and runs done callbacks once.
func (p *nativePlayer) Finish() {
	if p.finished {
		return
	}
	p.finished = true
	p.started = true
	if n := len(p.keyframes); n > 0 {
		for prop, value := range p.keyframes[n-1] {
			p.target.Style[prop] = value
		}
	}
	callbacks := p.onDone
	p.onDone = nil
	for _, fn := range callbacks {
		fn()
	}
}

func (p *nativePlayer) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.Finish()
}
