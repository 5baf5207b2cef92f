package api

// Conversation describes a channel-like object: a public or private
// channel, a DM, or a multi-party DM.
type Conversation struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	IsChannel  bool   `json:"is_channel,omitempty"`
	IsGroup    bool   `json:"is_group,omitempty"`
	IsIM       bool   `json:"is_im,omitempty"`
	IsArchived bool   `json:"is_archived,omitempty"`
	Created    int64  `json:"created,omitempty"`
	Creator    string `json:"creator,omitempty"`
	NumMembers int    `json:"num_members,omitempty"`
}

// ConversationsListPayload lists conversations visible to the calling
// token. Wire method: conversations.list.
type ConversationsListPayload struct {
	ExcludeArchived bool   `json:"exclude_archived,omitempty"`
	Types           string `json:"types,omitempty"`
	Limit           int    `json:"limit,omitempty"`
}

func (p *ConversationsListPayload) Method() string { return "conversations.list" }

func (p *ConversationsListPayload) Response() Response { return &ConversationsListResponse{} }

// ConversationsListResponse is the result of conversations.list.
type ConversationsListResponse struct {
	BaseResponse
	Channels []Conversation `json:"channels,omitempty"`
}
