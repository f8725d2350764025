// Package helpers provides test utility functions for the portal API.
//
// The helpers package contains common test utilities for building HTTP
// requests, decoding responses, and pointer creation.
//
// # Request Building
//
// Build and send requests against a live test server:
//
//	resp := helpers.NewRequest(t, http.MethodPost, server.URL, "/v1/auth/login").
//	    WithBody(body).
//	    Do()
//
// # Response Decoding
//
// Decode standard envelope responses:
//
//	data := helpers.GetDataFromResponse(t, resp)
//	helpers.DecodeResponse(t, resp, &out)
//
// # Pointer Helpers
//
// Create pointers to literal values:
//
//	name := helpers.StringPtr("test")
//	count := helpers.IntPtr(42)
//	flag := helpers.BoolPtr(true)
package helpers
