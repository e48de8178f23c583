// Package inspect serves a read-only view of an element registry over HTTP.
//
// Routes:
//
//	GET /elements         registered element names
//	GET /elements/{name}  how a tag name resolves
//	GET /metrics          Prometheus metrics
//	GET /probe            WebSocket; send a tag name, receive its Description
//
// Usage:
//
//	srv := inspect.New(reg, inspect.WithLogger(logger), inspect.WithGatherer(promReg))
//	http.ListenAndServe(":9191", srv)
package inspect
