// Package controller holds the HTTP middlewares shared by the API server:
// WithCORS (permissive CORS plus preflight handling), WithLogger (request ID
// and request-scoped logger injection with access logging) and PprofMux (the
// net/http/pprof handlers behind the debug prefix).
package controller
