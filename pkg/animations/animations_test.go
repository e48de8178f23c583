package animations

import (
	"errors"
	"testing"
	"time"

	"github.com/nsgo-dev/nsgo/pkg/inject"
	"github.com/nsgo-dev/nsgo/pkg/view"
)

type fakeRenderer struct {
	removed []*view.View
}

func (r *fakeRenderer) CreateElement(name string) (*view.View, error) {
	v := view.StackLayout.New()
	v.NodeName = name
	return v, nil
}

func (r *fakeRenderer) AppendChild(parent, child *view.View) error {
	return parent.InsertChild(child, -1)
}

func (r *fakeRenderer) InsertBefore(parent, child, ref *view.View) error {
	return parent.InsertChild(child, parent.IndexOf(ref))
}

func (r *fakeRenderer) RemoveChild(parent, child *view.View) error {
	r.removed = append(r.removed, child)
	parent.RemoveChild(child)
	return nil
}

type fakeFactory struct {
	renderer *fakeRenderer
}

func (f *fakeFactory) CreateRenderer() Renderer { return f.renderer }

type countingZone struct{ runs int }

func (z *countingZone) Run(fn func()) {
	z.runs++
	fn()
}

func TestWebStyleNormalizer(t *testing.T) {
	n := NewWebStyleNormalizer()

	names := map[string]string{
		"background-color": "backgroundColor",
		"opacity":          "opacity",
		"border-top-width": "borderTopWidth",
		"translateX":       "translateX",
	}
	for in, want := range names {
		if got := n.NormalizePropertyName(in); got != want {
			t.Errorf("NormalizePropertyName(%q) = %q, want %q", in, got, want)
		}
	}

	values := []struct {
		prop, value, want string
	}{
		{"width", "100", "100px"},
		{"width", "0", "0"},
		{"width", "50%", "50%"},
		{"opacity", "0.5", "0.5"},
		{"height", " 12.5 ", "12.5px"},
	}
	for _, tt := range values {
		if got := n.NormalizeStyleValue(tt.prop, tt.value); got != tt.want {
			t.Errorf("NormalizeStyleValue(%q, %q) = %q, want %q", tt.prop, tt.value, got, tt.want)
		}
	}
}

func TestEngine_AnimateAppliesFinalKeyframe(t *testing.T) {
	e := NewEngine(NewNativeDriver(), NewWebStyleNormalizer())
	target := view.Label.New()

	p, err := e.Animate(target, []Keyframe{
		{"opacity": "0"},
		{"opacity": "1", "background-color": "red"},
	}, 300*time.Millisecond, 0, "ease-in")
	if err != nil {
		t.Fatal(err)
	}
	if !p.HasStarted() {
		t.Error("player should be started")
	}
	if len(e.Players(target)) != 1 {
		t.Fatalf("players = %d, want 1", len(e.Players(target)))
	}

	done := 0
	p.OnDone(func() { done++ })
	p.Finish()
	p.Finish()

	if target.Style["opacity"] != "1" || target.Style["backgroundColor"] != "red" {
		t.Errorf("style = %v", target.Style)
	}
	if done != 1 {
		t.Errorf("done callbacks ran %d times, want 1", done)
	}
	if len(e.Players(target)) != 0 {
		t.Error("finished player still tracked")
	}
}

func TestEngine_RejectsUnsupportedProperty(t *testing.T) {
	e := NewEngine(NewNativeDriver(), NewWebStyleNormalizer())
	_, err := e.Animate(view.Label.New(), []Keyframe{{"font-family": "serif"}}, time.Second, 0, "")
	if err == nil {
		t.Error("expected error for non-animatable property")
	}
}

func TestProviders_BuildRendererFactory(t *testing.T) {
	native := &fakeFactory{renderer: &fakeRenderer{}}
	zone := &countingZone{}

	inj, err := inject.New(Providers(), []inject.Provider{
		inject.ValueProvider(TokenNativeRendererFactory, native),
		inject.ValueProvider(TokenZone, zone),
	})
	if err != nil {
		t.Fatal(err)
	}

	factory, err := inject.Get[*AnimationRendererFactory](inj, TokenRendererFactory)
	if err != nil {
		t.Fatalf("resolve renderer factory: %v", err)
	}
	engine, _ := inject.Get[*Engine](inj, TokenAnimationEngine)
	if factory.Engine() != engine {
		t.Error("renderer factory should share the injected engine")
	}
	if _, ok := engine.Driver().(*NativeDriver); !ok {
		t.Errorf("driver = %T, want *NativeDriver", engine.Driver())
	}

	r := factory.CreateRenderer().(*AnimationRenderer)
	parent, _ := r.CreateElement("StackLayout")
	child, _ := r.CreateElement("StackLayout")
	if err := r.AppendChild(parent, child); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Animate(child, []Keyframe{{"opacity": "0.2"}}, time.Second, 0, "linear"); err != nil {
		t.Fatal(err)
	}
	if err := r.RemoveChild(parent, child); err != nil {
		t.Fatal(err)
	}

	if child.Style["opacity"] != "0.2" {
		t.Error("removing a view should finish its animations")
	}
	if len(engine.Players(child)) != 0 {
		t.Error("players not cleared after removal")
	}
	if len(native.renderer.removed) != 1 {
		t.Error("remove not delegated")
	}
	if zone.runs != 5 {
		t.Errorf("zone runs = %d, want 5", zone.runs)
	}
}

func TestProviders_MissingHostValues(t *testing.T) {
	inj, _ := inject.New(Providers())

	_, err := inj.Get(TokenRendererFactory)
	if !errors.Is(err, inject.ErrNoProvider) {
		t.Errorf("err = %v, want ErrNoProvider", err)
	}
}

func TestProviders_WrongHostType(t *testing.T) {
	inj, _ := inject.New(Providers(), []inject.Provider{
		inject.ValueProvider(TokenNativeRendererFactory, "not a factory"),
		inject.ValueProvider(TokenZone, InlineZone{}),
	})

	_, err := inj.Get(TokenRendererFactory)
	if !errors.Is(err, inject.ErrFactory) {
		t.Errorf("err = %v, want ErrFactory", err)
	}
}
