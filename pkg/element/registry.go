package element

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/nsgo-dev/nsgo/internal/errors"
	"github.com/nsgo-dev/nsgo/pkg/view"
)

// Resolver loads the view class for an element on demand.
type Resolver func() (*view.Class, error)

// Meta is per-element attachment policy consumed by the tree builder.
type Meta struct {
	// SkipAddToDom keeps views of this element out of the visual tree.
	SkipAddToDom bool

	// InsertChild, if set, replaces the default attachment of a child
	// under a parent of this element type.
	InsertChild func(parent, child *view.View, index int)

	// RemoveChild, if set, replaces the default detachment.
	RemoveChild func(parent, child *view.View)
}

// defaultMeta is returned for elements registered without metadata.
// It is shared and must not be modified.
var defaultMeta = &Meta{SkipAddToDom: false}

// DefaultMeta returns the shared metadata used for elements registered
// without any.
func DefaultMeta() *Meta {
	return defaultMeta
}

type entry struct {
	name     string
	resolver Resolver
	meta     *Meta
}

// resolve runs the resolver, turning a panic or a nil class into an error.
func (e *entry) resolve() (cls *view.Class, err error) {
	defer func() {
		if p := recover(); p != nil {
			cls, err = nil, fmt.Errorf("resolver panicked: %v", p)
		}
	}()
	cls, err = e.resolver()
	if err == nil && cls == nil {
		err = fmt.Errorf("resolver returned no class")
	}
	return cls, err
}

// Registry maps element names to view classes. It is not safe for
// concurrent use while Register is being called; register everything at
// startup, then share the registry with readers.
type Registry struct {
	entries map[string]*entry
	names   map[string]*entry
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics records lookups and registrations to m.
func WithMetrics(m *Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]*entry),
		names:   make(map[string]*entry),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds an element under its exact, lowercase and kebab names.
// meta may be nil. Registering the same exact name twice fails with
// ErrDuplicateRegistration and leaves the registry unchanged.
func (r *Registry) Register(name string, resolver Resolver, meta *Meta) error {
	if name == "" {
		return errors.New("E203").WithDetail("Element name must not be empty.")
	}
	if resolver == nil {
		return errors.New("E203").
			WithSubject(name).
			WithDetail(fmt.Sprintf("Element %s has no resolver.", name))
	}
	if _, ok := r.names[name]; ok {
		return errors.New("E200").
			WithSubject(name).
			WithDetail(fmt.Sprintf("Element for %s already registered.", name))
	}

	e := &entry{name: name, resolver: resolver, meta: meta}
	for i, key := range keys(name) {
		r.setKey(key, e, i == 0)
	}
	r.names[name] = e
	r.metrics.setRegistered(len(r.names))

	r.logger.Debug("element registered", "name", name, "skip_add_to_dom", meta != nil && meta.SkipAddToDom)
	return nil
}

// setKey points key at e. Exact keys always win. A derived key never
// replaces another element's exact key, but may replace a derived one.
func (r *Registry) setKey(key string, e *entry, exact bool) {
	prev, ok := r.entries[key]
	if ok && prev != e {
		if _, owned := r.names[key]; owned && !exact {
			r.logger.Warn("element alias shadowed by registered name",
				"key", key, "element", e.name, "owner", prev.name)
			return
		}
		r.logger.Warn("element alias reassigned",
			"key", key, "element", e.name, "previous", prev.name)
		r.metrics.aliasOverride()
	}
	r.entries[key] = e
}

// lookup tries name verbatim, then lowercased.
func (r *Registry) lookup(name string) *entry {
	if e, ok := r.entries[name]; ok {
		return e
	}
	return r.entries[strings.ToLower(name)]
}

// ViewClass resolves the view class for name. Unknown names fail with
// ErrUnknownElement; resolver failures with ErrViewResolution.
func (r *Registry) ViewClass(name string) (*view.Class, error) {
	e := r.lookup(name)
	r.metrics.lookup("view_class", e != nil)
	if e == nil {
		return nil, errors.New("E201").
			WithSubject(name).
			WithDetail(fmt.Sprintf("No known component for element %s.", name))
	}

	cls, err := e.resolve()
	if err != nil {
		r.metrics.resolveError()
		return nil, errors.New("E202").
			WithSubject(name).
			WithDetail(fmt.Sprintf("Could not load view for: %s.", name)).
			Wrap(err)
	}
	return cls, nil
}

// ViewMeta returns the metadata for name, or the default metadata when the
// element is unknown or was registered without any.
func (r *Registry) ViewMeta(name string) *Meta {
	e := r.lookup(name)
	r.metrics.lookup("view_meta", e != nil)
	if e != nil && e.meta != nil {
		return e.meta
	}
	return defaultMeta
}

// IsKnown reports whether name is registered. It never runs the resolver.
func (r *Registry) IsKnown(name string) bool {
	e := r.lookup(name)
	r.metrics.lookup("is_known", e != nil)
	return e != nil
}

// Registered reports whether name was registered under exactly that
// spelling. Unlike IsKnown it ignores derived aliases.
func (r *Registry) Registered(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Canonical returns the exact registered name that a lookup of name
// reaches.
func (r *Registry) Canonical(name string) (string, bool) {
	e := r.lookup(name)
	if e == nil {
		return "", false
	}
	return e.name, true
}

// Names returns the registered exact names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
