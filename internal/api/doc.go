// Package api implements the request pipeline shared by every endpoint of
// the App Store Server API client: URL and query construction, per-request
// bearer token signing, JSON body serialization, dispatch through the
// supplied HTTP transport, and response classification.
//
// # Response Classification
//
// Every call resolves to exactly one of:
//
//   - nil: 2xx status and the body decoded into the caller's result type.
//   - [DecodeError]: 2xx status but the body did not match the result type.
//   - [APIError]: non-2xx status, carrying the envelope's numeric error
//     code when the body decoded into one, or the status alone otherwise.
//   - [NetworkError]: the request never produced a usable response
//     (connection failure, timeout, oversized body).
//
// Unrecognized numeric error codes are carried through as-is; mapping codes
// to known kinds happens in the public package so that server-added codes
// never break classification here.
//
// # Thread Safety
//
// The [Client] type is stateless per call and safe for concurrent use.
package api
