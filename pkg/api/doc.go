// Package api defines the wire-level types for the Slack Web API client.
//
// This package provides the contracts every endpoint definition satisfies
// (Payload, Response), the uniform error type returned by the client
// (APIError), and concrete payload/response pairs for common Web API
// methods.
//
// The package has zero external dependencies (Go standard library only) and
// performs no I/O. All types produce JSON compatible with the Slack Web API
// wire format: the snake_case field names written on the way out are the
// exact names the remote service uses, so serialization is symmetric.
//
// Core types:
//   - [Payload]: A single API call's data plus its endpoint identity and
//     declared response shape
//   - [Response]: Minimal surface every API response carries (the "ok" flag
//     and the error code)
//   - [BaseResponse]: Embeddable implementation of Response
//   - [APIError]: The single error kind exposed by the client; always wraps
//     the originating failure
//
// Extension support:
//
// Any type with a wire method name, a response descriptor, and JSON-tagged
// fields can be sent through the client; nothing in this package needs to
// know about it in advance.
package api
