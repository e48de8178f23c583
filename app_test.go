package nsgo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nsgo-dev/nsgo/pkg/animations"
	"github.com/nsgo-dev/nsgo/pkg/element"
	"github.com/nsgo-dev/nsgo/pkg/inject"
	"github.com/nsgo-dev/nsgo/pkg/manifest"
	"github.com/nsgo-dev/nsgo/pkg/view"
	"github.com/nsgo-dev/nsgo/pkg/viewtree"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_Defaults(t *testing.T) {
	app, err := New(context.Background(), nil, WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"Page", "stack-layout", "img", "DetachedContainer"} {
		if !app.Registry().IsKnown(name) {
			t.Errorf("%s should be registered", name)
		}
	}

	factory, err := app.RendererFactory()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := factory.(*animations.AnimationRendererFactory); !ok {
		t.Errorf("factory = %T, want *AnimationRendererFactory", factory)
	}
}

func TestNew_RenderTree(t *testing.T) {
	app, err := New(context.Background(), nil, WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	factory, _ := app.RendererFactory()
	r := factory.CreateRenderer()

	page, _ := r.CreateElement("Page")
	stack, _ := r.CreateElement("StackLayout")
	label, _ := r.CreateElement("Label")
	hidden, _ := r.CreateElement("DetachedText")

	for _, step := range []error{
		r.AppendChild(page, stack),
		r.AppendChild(stack, label),
		r.AppendChild(stack, hidden),
	} {
		if step != nil {
			t.Fatal(step)
		}
	}

	if got := page.String(); got != "Page(StackLayout(Label))" {
		t.Errorf("tree = %s", got)
	}
	if hidden.TemplateParent != stack {
		t.Error("detached element should keep its template parent")
	}

	ar := r.(*animations.AnimationRenderer)
	if _, err := ar.Animate(label, []animations.Keyframe{{"opacity": "0"}}, time.Second, 0, "linear"); err != nil {
		t.Fatal(err)
	}
	if err := r.RemoveChild(stack, label); err != nil {
		t.Fatal(err)
	}
	if label.Style["opacity"] != "0" {
		t.Error("animation should be finished on removal")
	}
}

func TestNew_AnimationsDisabled(t *testing.T) {
	cfg := DefaultConfig()
	off := false
	cfg.Animations = &off

	app, err := New(context.Background(), cfg, WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	factory, err := app.RendererFactory()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := factory.(*viewtree.Factory); !ok {
		t.Errorf("factory = %T, want *viewtree.Factory", factory)
	}
	if app.Injector().Has(animations.TokenAnimationEngine) {
		t.Error("animation engine should not be provided")
	}
}

func TestNew_InlineElementsAndManifests(t *testing.T) {
	dir := t.TempDir()
	manifestYAML := "elements:\n  - name: Card\n    extends: StackLayout\n"
	if err := os.WriteFile(filepath.Join(dir, "elements.yaml"), []byte(manifestYAML), 0644); err != nil {
		t.Fatal(err)
	}
	configJSON := `{
  "elements": [{"name": "Offscreen", "extends": "ContentView", "skipAddToDom": true}],
  "manifests": ["elements.yaml"]
}`
	if err := os.WriteFile(filepath.Join(dir, "nsgo.json"), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	app, err := New(context.Background(), cfg, WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}

	cls, err := app.Registry().ViewClass("card")
	if err != nil || cls != view.StackLayout {
		t.Errorf("card = %v, %v", cls, err)
	}
	if !app.Registry().ViewMeta("offscreen").SkipAddToDom {
		t.Error("Offscreen should skip the visual tree")
	}
}

func TestNew_ManifestErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Manifests = []string{filepath.Join(t.TempDir(), "missing.yaml")}

	_, err := New(context.Background(), cfg, WithLogger(quietLogger()))
	if !errors.Is(err, manifest.ErrLoad) {
		t.Errorf("err = %v, want ErrLoad", err)
	}

	cfg = DefaultConfig()
	cfg.Elements = []manifest.Element{{Name: "Label", Extends: "Button"}}
	_, err = New(context.Background(), cfg, WithLogger(quietLogger()))
	if !errors.Is(err, element.ErrDuplicateRegistration) {
		t.Errorf("err = %v, want ErrDuplicateRegistration", err)
	}
}

func TestNew_ProviderOverride(t *testing.T) {
	zone := &recordingZone{}
	app, err := New(context.Background(), nil,
		WithLogger(quietLogger()),
		WithProviders(inject.ValueProvider(animations.TokenZone, zone)),
	)
	if err != nil {
		t.Fatal(err)
	}

	factory, _ := app.RendererFactory()
	if _, err := factory.CreateRenderer().CreateElement("Label"); err != nil {
		t.Fatal(err)
	}
	if zone.runs != 1 {
		t.Errorf("zone runs = %d, want 1", zone.runs)
	}
}

func TestNew_LogsReady(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(context.Background(), nil, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "nsgo app ready") {
		t.Errorf("logs = %q", buf.String())
	}
}

type fakeObjects map[string]string

func (f fakeObjects) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, fmt.Errorf("NoSuchKey: %s/%s", *in.Bucket, *in.Key)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestNew_S3ManifestThroughLoader(t *testing.T) {
	objects := fakeObjects{"ui/elements.yaml": "elements:\n  - name: Toolbar\n    extends: FlexboxLayout\n"}
	cfg := DefaultConfig()
	cfg.Manifests = []string{"s3://ui/elements.yaml"}

	app, err := New(context.Background(), cfg,
		WithLogger(quietLogger()),
		WithLoader(manifest.NewLoader(manifest.WithS3(objects))),
	)
	if err != nil {
		t.Fatal(err)
	}
	cls, err := app.Registry().ViewClass("toolbar")
	if err != nil || cls != view.FlexboxLayout {
		t.Errorf("toolbar = %v, %v", cls, err)
	}

	cfg.Manifests = []string{"s3://ui/missing.yaml"}
	_, err = New(context.Background(), cfg,
		WithLogger(quietLogger()),
		WithLoader(manifest.NewLoader(manifest.WithS3(objects))),
	)
	if !errors.Is(err, manifest.ErrLoad) {
		t.Errorf("err = %v, want ErrLoad", err)
	}
}

func TestNew_ExtendsCycleBetweenConfigAndManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "inner.yaml"), []byte("elements:\n  - name: Inner\n    extends: Outer\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.Elements = []manifest.Element{{Name: "Outer", Extends: "Inner"}}
	cfg.Manifests = []string{filepath.Join(dir, "inner.yaml")}

	app, err := New(context.Background(), cfg, WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	_, err = app.Registry().ViewClass("outer")
	if !errors.Is(err, element.ErrViewResolution) || !strings.Contains(err.Error(), "extends itself") {
		t.Errorf("err = %v, want a cycle resolution error", err)
	}
}

type recordingZone struct{ runs int }

func (z *recordingZone) Run(fn func()) {
	z.runs++
	fn()
}
