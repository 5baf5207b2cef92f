package api

// UserProfile holds the display fields of a user record.
type UserProfile struct {
	RealName    string `json:"real_name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Image48     string `json:"image_48,omitempty"`
}

// User is a member of the workspace.
type User struct {
	ID       string      `json:"id"`
	TeamID   string      `json:"team_id,omitempty"`
	Name     string      `json:"name,omitempty"`
	RealName string      `json:"real_name,omitempty"`
	TZ       string      `json:"tz,omitempty"`
	IsAdmin  bool        `json:"is_admin,omitempty"`
	IsOwner  bool        `json:"is_owner,omitempty"`
	IsBot    bool        `json:"is_bot,omitempty"`
	Deleted  bool        `json:"deleted,omitempty"`
	Profile  UserProfile `json:"profile,omitempty"`
}

// UsersInfoPayload fetches one user record. Wire method: users.info.
type UsersInfoPayload struct {
	User string `json:"user"`
}

func (p *UsersInfoPayload) Method() string { return "users.info" }

func (p *UsersInfoPayload) Response() Response { return &UsersInfoResponse{} }

// UsersInfoResponse is the result of users.info.
type UsersInfoResponse struct {
	BaseResponse
	User User `json:"user,omitempty"`
}
