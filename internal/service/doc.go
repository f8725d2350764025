// Package service implements the application logic behind the handlers:
// authentication against the seeded roster, the in-memory draft form
// store, the picture blob store, and the homepage content feed.
//
// Services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct
//   - Methods take context.Context and return explicit errors
//   - All errors returned to handlers are sentinels from errors.go
//
// Nothing in this package persists across process restarts; the portal
// deliberately has no database.
package service
