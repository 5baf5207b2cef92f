package api

// IMChannel identifies a direct-message channel.
type IMChannel struct {
	ID string `json:"id"`
}

// ImOpenPayload opens (or resumes) a direct-message channel with a user.
// Wire method: im.open.
type ImOpenPayload struct {
	User     string `json:"user"`
	ReturnIM bool   `json:"return_im,omitempty"`
}

func (p *ImOpenPayload) Method() string { return "im.open" }

func (p *ImOpenPayload) Response() Response { return &ImOpenResponse{} }

// ImOpenResponse is the result of im.open. NoOp and AlreadyOpen are set
// when the DM channel existed before the call.
type ImOpenResponse struct {
	BaseResponse
	NoOp        bool      `json:"no_op,omitempty"`
	AlreadyOpen bool      `json:"already_open,omitempty"`
	Channel     IMChannel `json:"channel,omitempty"`
}

// ImClosePayload closes a direct-message channel. Wire method: im.close.
type ImClosePayload struct {
	Channel string `json:"channel"`
}

func (p *ImClosePayload) Method() string { return "im.close" }

func (p *ImClosePayload) Response() Response { return &ImCloseResponse{} }

// ImCloseResponse is the result of im.close.
type ImCloseResponse struct {
	BaseResponse
	NoOp          bool `json:"no_op,omitempty"`
	AlreadyClosed bool `json:"already_closed,omitempty"`
}
