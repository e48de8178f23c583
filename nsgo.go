// Package nsgo is the application root for rendering templates into native
// views.
//
// An App owns the element registry, the provider injector and the renderer
// factory. It is built once at startup from nsgo.json:
//
//	cfg, err := nsgo.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	app, err := nsgo.New(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	factory, err := app.RendererFactory()
//	r := factory.CreateRenderer()
//	page, err := r.CreateElement("Page")
//
// New registers the built-in elements, the elements declared inline in the
// config, and every configured manifest, in that order. After New returns the
// registry is only read.
package nsgo
