package api

// APITestPayload exercises the api.test endpoint, which echoes the
// arguments it receives. Setting Error makes the remote service respond
// with that error code.
type APITestPayload struct {
	Error string `json:"error,omitempty"`
	Foo   string `json:"foo,omitempty"`
}

func (p *APITestPayload) Method() string { return "api.test" }

func (p *APITestPayload) Response() Response { return &APITestResponse{} }

// APITestResponse is the result of api.test. Args echoes the request
// fields as the remote service saw them.
type APITestResponse struct {
	BaseResponse
	Args map[string]string `json:"args,omitempty"`
}

// AuthTestPayload checks authentication and identity. Wire method:
// auth.test. The call carries no fields beyond the token.
type AuthTestPayload struct{}

func (p *AuthTestPayload) Method() string { return "auth.test" }

func (p *AuthTestPayload) Response() Response { return &AuthTestResponse{} }

// AuthTestResponse is the result of auth.test.
type AuthTestResponse struct {
	BaseResponse
	URL    string `json:"url,omitempty"`
	Team   string `json:"team,omitempty"`
	User   string `json:"user,omitempty"`
	TeamID string `json:"team_id,omitempty"`
	UserID string `json:"user_id,omitempty"`
}
