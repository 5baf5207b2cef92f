package api

// Payload describes one Slack Web API call. Implementations declare the
// wire method they target and the response shape the remote service
// answers with. The payload's JSON-tagged fields become the request's
// field mapping.
type Payload interface {
	// Method returns the namespaced wire method name, e.g. "chat.postMessage".
	Method() string

	// Response returns a fresh, empty instance of the response type the
	// wire method produces. The client decodes the raw response into it.
	Response() Response
}

// Response is the minimal surface every Web API response carries. The
// remote service includes an "ok" flag in every response body; on failure
// it adds a machine-readable error code.
type Response interface {
	// Okay reports whether the remote service accepted the call.
	Okay() bool

	// ErrorCode returns the error code for a failed call, e.g.
	// "channel_not_found". Empty when Okay is true.
	ErrorCode() string
}

// BaseResponse holds the fields common to all Web API responses. Concrete
// response types embed it.
type BaseResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// Okay implements Response.
func (r *BaseResponse) Okay() bool { return r.OK }

// ErrorCode implements Response.
func (r *BaseResponse) ErrorCode() string { return r.Error }
