package animations

import (
	"fmt"
	"time"

	"github.com/nsgo-dev/nsgo/pkg/view"
)

// Engine normalizes keyframes and hands them to the driver. It tracks
// running players per view so they can be finished when a view leaves
// the tree.
type Engine struct {
	driver     Driver
	normalizer StyleNormalizer
	active     map[*view.View][]Player
}

// NewEngine creates an Engine.
func NewEngine(driver Driver, normalizer StyleNormalizer) *Engine {
	return &Engine{
		driver:     driver,
		normalizer: normalizer,
		active:     make(map[*view.View][]Player),
	}
}

// Driver returns the engine's driver.
func (e *Engine) Driver() Driver {
	return e.driver
}

// Animate normalizes keyframes and starts a player on target.
func (e *Engine) Animate(target *view.View, keyframes []Keyframe, duration, delay time.Duration, easing string) (Player, error) {
	normalized := make([]Keyframe, len(keyframes))
	for i, kf := range keyframes {
		out := make(Keyframe, len(kf))
		for prop, value := range kf {
			name := e.normalizer.NormalizePropertyName(prop)
			if !e.driver.ValidateStyleProperty(name) {
				return nil, fmt.Errorf("animations: property %q is not animatable on %s", prop, target.Class().Name)
			}
			out[name] = e.normalizer.NormalizeStyleValue(name, value)
		}
		normalized[i] = out
	}

	p := e.driver.Animate(target, normalized, duration, delay, easing)
	e.active[target] = append(e.active[target], p)
	p.OnDone(func() { e.forget(target, p) })
	p.Play()
	return p, nil
}

// Players returns the running players on target.
func (e *Engine) Players(target *view.View) []Player {
	return e.active[target]
}

// FinishAll finishes every running player on target.
func (e *Engine) FinishAll(target *view.View) {
	players := append([]Player(nil), e.active[target]...)
	for _, p := range players {
		p.Finish()
	}
	delete(e.active, target)
}

func (e *Engine) forget(target *view.View, p Player) {
	players := e.active[target]
	for i, q := range players {
		if q == p {
			players = append(players[:i], players[i+1:]...)
			break
		}
	}
	if len(players) == 0 {
		delete(e.active, target)
		return
	}
	e.active[target] = players
}
