package nsgo

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nsgo-dev/nsgo/internal/config"
	"github.com/nsgo-dev/nsgo/pkg/animations"
	"github.com/nsgo-dev/nsgo/pkg/element"
	"github.com/nsgo-dev/nsgo/pkg/inject"
	"github.com/nsgo-dev/nsgo/pkg/inspect"
	"github.com/nsgo-dev/nsgo/pkg/manifest"
	"github.com/nsgo-dev/nsgo/pkg/viewtree"
)

// App is the application root.
type App struct {
	config   *Config
	logger   *slog.Logger
	metrics  *prometheus.Registry
	registry *element.Registry
	injector *inject.Injector
}

// Option configures New.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	loader    *manifest.Loader
	zone      animations.Zone
	providers []inject.Provider
}

// WithLogger overrides the logger built from the config.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLoader sets the manifest loader.
func WithLoader(l *manifest.Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithZone sets the zone renderer work runs in. Default: animations.InlineZone.
func WithZone(z animations.Zone) Option {
	return func(o *options) {
		o.zone = z
	}
}

// WithProviders adds providers after the built-in ones, so they can
// override any token.
func WithProviders(p ...inject.Provider) Option {
	return func(o *options) {
		o.providers = append(o.providers, p...)
	}
}

// New builds an App from cfg. A nil cfg means DefaultConfig().
func New(ctx context.Context, cfg *Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.New()
	}
	o := options{zone: animations.InlineZone{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = cfg.Logger(os.Stderr)
	}

	a := &App{
		config:  cfg,
		logger:  o.logger,
		metrics: prometheus.NewRegistry(),
	}

	a.registry = element.NewRegistry(
		element.WithLogger(a.logger),
		element.WithMetrics(element.NewMetrics(element.MetricsConfig{
			Namespace: cfg.Metrics.Namespace,
			Registry:  a.metrics,
		})),
	)
	if err := element.RegisterBuiltins(a.registry); err != nil {
		return nil, err
	}

	catalog := manifest.NewCatalog(a.registry)
	inline := &manifest.Manifest{Source: config.ConfigFileName, Elements: cfg.Elements}
	if err := catalog.Apply(inline); err != nil {
		return nil, err
	}

	if err := a.loadManifests(ctx, catalog, o.loader); err != nil {
		return nil, err
	}

	injector, err := inject.New(a.providers(o.zone), o.providers)
	if err != nil {
		return nil, err
	}
	a.injector = injector

	a.logger.Info("nsgo app ready",
		"elements", len(a.registry.Names()),
		"animations", cfg.AnimationsEnabled())
	return a, nil
}

func (a *App) loadManifests(ctx context.Context, catalog *manifest.Catalog, loader *manifest.Loader) error {
	sources := a.config.ManifestSources()
	if len(sources) == 0 {
		return nil
	}
	if loader == nil {
		var loaderOpts []manifest.LoaderOption
		for _, src := range sources {
			if strings.HasPrefix(src, "s3://") {
				loaderOpts = append(loaderOpts, manifest.WithS3(manifest.NewS3Client(a.config.S3.Region)))
				break
			}
		}
		loader = manifest.NewLoader(loaderOpts...)
	}

	for _, src := range sources {
		m, err := loader.Load(ctx, src)
		if err != nil {
			return err
		}
		if err := catalog.Apply(m); err != nil {
			return err
		}
		a.logger.Debug("manifest applied", "source", src, "elements", len(m.Elements))
	}
	return nil
}

// providers returns the host providers plus, when enabled, the animation
// providers. Without animations the renderer factory is the native one.
func (a *App) providers(zone animations.Zone) []inject.Provider {
	host := []inject.Provider{
		inject.ValueProvider(animations.TokenNativeRendererFactory, viewtree.NewFactory(a.registry, a.logger)),
		inject.ValueProvider(animations.TokenZone, zone),
	}
	if a.config.AnimationsEnabled() {
		return append(animations.Providers(), host...)
	}
	return append(host, inject.Provider{
		Token: animations.TokenRendererFactory,
		Deps:  []inject.Token{animations.TokenNativeRendererFactory},
		Factory: func(deps ...any) (any, error) {
			return deps[0], nil
		},
	})
}

// Registry returns the element registry.
func (a *App) Registry() *element.Registry {
	return a.registry
}

// Injector returns the provider injector.
func (a *App) Injector() *inject.Injector {
	return a.injector
}

// RendererFactory resolves the renderer factory templates render through.
func (a *App) RendererFactory() (animations.RendererFactory, error) {
	return inject.Get[animations.RendererFactory](a.injector, animations.TokenRendererFactory)
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Config returns the configuration the app was built from.
func (a *App) Config() *Config {
	return a.config
}

// Inspector returns an inspector server over the app's registry.
func (a *App) Inspector(opts ...inspect.Option) *inspect.Server {
	base := []inspect.Option{inspect.WithLogger(a.logger), inspect.WithGatherer(a.metrics)}
	return inspect.New(a.registry, append(base, opts...)...)
}
