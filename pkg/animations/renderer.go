package animations

import (
	"time"

	"github.com/nsgo-dev/nsgo/pkg/view"
)

// Renderer creates views and attaches them to the tree.
type Renderer interface {
	CreateElement(name string) (*view.View, error)
	AppendChild(parent, child *view.View) error
	InsertBefore(parent, child, ref *view.View) error
	RemoveChild(parent, child *view.View) error
}

// RendererFactory creates renderers.
type RendererFactory interface {
	CreateRenderer() Renderer
}

// Zone runs renderer work on the UI thread.
type Zone interface {
	Run(fn func())
}

// InlineZone runs work on the calling goroutine.
type InlineZone struct{}

// Run calls fn.
func (InlineZone) Run(fn func()) { fn() }

// AnimationRendererFactory wraps a native renderer factory so renderers it
// creates finish a view's animations before detaching it.
type AnimationRendererFactory struct {
	delegate RendererFactory
	engine   *Engine
	zone     Zone
}

// NewAnimationRendererFactory creates an AnimationRendererFactory.
func NewAnimationRendererFactory(delegate RendererFactory, engine *Engine, zone Zone) *AnimationRendererFactory {
	return &AnimationRendererFactory{delegate: delegate, engine: engine, zone: zone}
}

// Engine returns the animation engine.
func (f *AnimationRendererFactory) Engine() *Engine {
	return f.engine
}

// CreateRenderer returns an AnimationRenderer over a delegate renderer.
func (f *AnimationRendererFactory) CreateRenderer() Renderer {
	return &AnimationRenderer{
		delegate: f.delegate.CreateRenderer(),
		engine:   f.engine,
		zone:     f.zone,
	}
}

// AnimationRenderer forwards to a delegate renderer inside the zone.
type AnimationRenderer struct {
	delegate Renderer
	engine   *Engine
	zone     Zone
}

func (r *AnimationRenderer) CreateElement(name string) (v *view.View, err error) {
	r.zone.Run(func() { v, err = r.delegate.CreateElement(name) })
	return v, err
}

func (r *AnimationRenderer) AppendChild(parent, child *view.View) (err error) {
	r.zone.Run(func() { err = r.delegate.AppendChild(parent, child) })
	return err
}

func (r *AnimationRenderer) InsertBefore(parent, child, ref *view.View) (err error) {
	r.zone.Run(func() { err = r.delegate.InsertBefore(parent, child, ref) })
	return err
}

// RemoveChild finishes running animations on child, then detaches it.
func (r *AnimationRenderer) RemoveChild(parent, child *view.View) (err error) {
	r.zone.Run(func() {
		r.engine.FinishAll(child)
		err = r.delegate.RemoveChild(parent, child)
	})
	return err
}

// Animate starts an animation on target inside the zone.
func (r *AnimationRenderer) Animate(target *view.View, keyframes []Keyframe, duration, delay time.Duration, easing string) (p Player, err error) {
	r.zone.Run(func() { p, err = r.engine.Animate(target, keyframes, duration, delay, easing) })
	return p, err
}
