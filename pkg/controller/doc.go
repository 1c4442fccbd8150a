// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Middlewares:
//   - WithCORS allows cross-origin reads and answers preflight requests.
//   - WithLogger attaches a request ID and request-scoped logger and writes access logs.
//   - WithMetrics records request durations per route.
//
// PprofMux exposes net/http/pprof.
package controller
