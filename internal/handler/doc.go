// Package handler provides HTTP request handlers for the portal API.
//
// The handler package contains all HTTP endpoint implementations organized
// by feature area. Each handler struct encapsulates the dependencies needed
// to serve requests for that area (authentication, draft profile forms,
// site content).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: single resource with optional HATEOAS links
//   - WriteJSON: raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// Protected handlers require a bearer token. The auth middleware extracts
// the member ID and makes it available via middleware.GetUserID.
package handler
