// Package middleware provides HTTP middleware for the portal API:
// request IDs, structured request logging, panic recovery, CORS, gzip
// compression, per-client rate limiting, and bearer-token auth.
//
// Middlewares compose with Chain:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
package middleware
