// Package manifest loads custom element declarations and applies them to
// an element registry.
//
// A manifest declares elements as aliases of already registered ones:
//
//	elements:
//	  - name: Card
//	    extends: StackLayout
//	  - name: Hidden
//	    extends: ContentView
//	    skipAddToDom: true
//
// JSON manifests are accepted too. Sources are local paths or
// s3://bucket/key URLs.
package manifest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	"github.com/nsgo-dev/nsgo/internal/errors"
	"github.com/nsgo-dev/nsgo/pkg/element"
	"github.com/nsgo-dev/nsgo/pkg/view"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrLoad    = errors.New("E220")
	ErrInvalid = errors.New("E221")
)

const tracerName = "github.com/nsgo-dev/nsgo/pkg/manifest"

// Element declares one custom element.
type Element struct {
	Name         string `yaml:"name" json:"name"`
	Extends      string `yaml:"extends" json:"extends"`
	SkipAddToDom bool   `yaml:"skipAddToDom,omitempty" json:"skipAddToDom,omitempty"`
}

// Manifest is a list of custom elements.
type Manifest struct {
	Source   string    `yaml:"-" json:"-"`
	Elements []Element `yaml:"elements" json:"elements"`
}

// Parse decodes a YAML or JSON manifest and validates it.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && err != io.EOF {
		return nil, errors.New("E221").
			WithDetail("Manifest could not be decoded.").
			Wrap(err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every element has a name and a base element and that
// no name is declared twice.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Elements))
	for i, el := range m.Elements {
		switch {
		case el.Name == "":
			return errors.New("E221").
				WithSubject(m.Source).
				WithDetail(fmt.Sprintf("Element #%d has no name.", i+1))
		case el.Extends == "":
			return errors.New("E221").
				WithSubject(m.Source).
				WithDetail(fmt.Sprintf("Element %s does not say which element it extends.", el.Name))
		case el.Extends == el.Name:
			return errors.New("E221").
				WithSubject(m.Source).
				WithDetail(fmt.Sprintf("Element %s extends itself.", el.Name))
		case seen[el.Name]:
			return errors.New("E221").
				WithSubject(m.Source).
				WithDetail(fmt.Sprintf("Element %s is declared twice.", el.Name))
		}
		seen[el.Name] = true
	}
	return nil
}

// Catalog records the custom elements applied to one registry and resolves
// their extends chains. Apply every manifest for a registry through the
// same Catalog so cycles spanning manifests are detected.
type Catalog struct {
	reg *element.Registry

	mu      sync.RWMutex
	extends map[string]string
}

// NewCatalog creates an empty Catalog over reg.
func NewCatalog(reg *element.Registry) *Catalog {
	return &Catalog{reg: reg, extends: make(map[string]string)}
}

// Apply registers every element of m. Either all elements are registered or,
// on error, none are. The base element is looked up when the new element is
// resolved, not now, so manifests may extend elements registered later; a
// missing base or an extends cycle surfaces from ViewClass as
// element.ErrViewResolution.
func (c *Catalog) Apply(m *Manifest) error {
	if err := m.Validate(); err != nil {
		return err
	}
	for _, el := range m.Elements {
		if c.reg.Registered(el.Name) {
			return errors.New("E200").
				WithSubject(el.Name).
				WithDetail(fmt.Sprintf("Element for %s already registered.", el.Name))
		}
	}

	c.mu.Lock()
	for _, el := range m.Elements {
		c.extends[el.Name] = el.Extends
	}
	c.mu.Unlock()

	for _, el := range m.Elements {
		name := el.Name
		var meta *element.Meta
		if el.SkipAddToDom {
			meta = &element.Meta{SkipAddToDom: true}
		}
		resolver := func() (*view.Class, error) { return c.resolve(name) }
		if err := c.reg.Register(name, resolver, meta); err != nil {
			return err
		}
	}
	return nil
}

// Base returns the element that name declares it extends.
func (c *Catalog) Base(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	base, ok := c.extends[name]
	return base, ok
}

// resolve follows the extends chain of name through catalog elements and
// resolves the first element outside the catalog.
func (c *Catalog) resolve(name string) (*view.Class, error) {
	base, _ := c.Base(name)
	seen := map[string]bool{name: true}
	cur := base
	for {
		canon, ok := c.reg.Canonical(cur)
		if !ok {
			break
		}
		next, declared := c.Base(canon)
		if !declared {
			break
		}
		if seen[canon] {
			if canon == name {
				return nil, fmt.Errorf("element %s extends itself through %s", name, cur)
			}
			return nil, fmt.Errorf("element %s extends %s, which extends itself", name, canon)
		}
		seen[canon] = true
		cur = next
	}
	return c.reg.ViewClass(cur)
}

// Loader reads manifests from files and S3.
type Loader struct {
	s3     ObjectGetter
	tracer trace.Tracer
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithS3 sets the client used for s3:// sources.
func WithS3(client ObjectGetter) LoaderOption {
	return func(l *Loader) {
		l.s3 = client
	}
}

// WithTracer sets the tracer. Default: the global otel tracer provider.
func WithTracer(tracer trace.Tracer) LoaderOption {
	return func(l *Loader) {
		l.tracer = tracer
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.tracer == nil {
		l.tracer = otel.Tracer(tracerName)
	}
	return l
}

// Load reads and parses the manifest at src.
func (l *Loader) Load(ctx context.Context, src string) (*Manifest, error) {
	ctx, span := l.tracer.Start(ctx, "manifest.Load",
		trace.WithAttributes(attribute.String("manifest.source", src)))
	defer span.End()

	data, err := l.read(ctx, src)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return nil, errors.New("E220").
			WithSubject(src).
			WithDetail(fmt.Sprintf("Could not read manifest %s.", src)).
			Wrap(err)
	}

	m, err := Parse(data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid manifest")
		var ne *errors.NSError
		if errors.As(err, &ne) && ne.Subject == "" {
			ne.Subject = src
		}
		return nil, err
	}
	m.Source = src
	span.SetAttributes(attribute.Int("manifest.elements", len(m.Elements)))
	return m, nil
}

func (l *Loader) read(ctx context.Context, src string) ([]byte, error) {
	if bucket, key, ok := parseS3URL(src); ok {
		if l.s3 == nil {
			return nil, fmt.Errorf("no S3 client configured for %s", src)
		}
		return getObject(ctx, l.s3, bucket, key)
	}
	if strings.HasPrefix(src, "s3://") {
		return nil, fmt.Errorf("malformed S3 URL %q, want s3://bucket/key", src)
	}
	return os.ReadFile(src)
}
