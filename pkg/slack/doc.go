// Package slack implements the Slack Web API client.
//
// A Client is constructed once with an instance token and then used for
// any number of concurrent API calls. Two calling conventions share one
// pipeline:
//
//   - [Client.Send] takes a typed [api.Payload], serializes it through
//     the wire format, and decodes the response into the payload's
//     declared response type.
//   - [Client.SendRaw] takes a wire method name and a generic field
//     mapping and returns the parsed response map verbatim.
//
// Every failure is returned as an [api.APIError] wrapping the original
// cause; callers only ever need to handle that one error type.
//
// Lifecycle listeners registered through [Client.AddListener] observe
// each call at two checkpoints: events.BeforeSend with the outgoing
// field mapping (token included) and events.AfterReceive with the
// parsed response mapping.
package slack
