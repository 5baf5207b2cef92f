package api

// Attachment is a legacy message attachment. Fields follow the wire names
// used by chat.postMessage and chat.update.
type Attachment struct {
	Fallback   string            `json:"fallback,omitempty"`
	Color      string            `json:"color,omitempty"`
	Pretext    string            `json:"pretext,omitempty"`
	AuthorName string            `json:"author_name,omitempty"`
	Title      string            `json:"title,omitempty"`
	TitleLink  string            `json:"title_link,omitempty"`
	Text       string            `json:"text,omitempty"`
	ImageURL   string            `json:"image_url,omitempty"`
	Fields     []AttachmentField `json:"fields,omitempty"`
}

// AttachmentField is a short key/value block rendered inside an attachment.
type AttachmentField struct {
	Title string `json:"title,omitempty"`
	Value string `json:"value,omitempty"`
	Short bool   `json:"short,omitempty"`
}

// ChatPostMessagePayload posts a message to a channel, group, or DM.
// Wire method: chat.postMessage.
type ChatPostMessagePayload struct {
	Channel     string       `json:"channel"`
	Text        string       `json:"text"`
	Username    string       `json:"username,omitempty"`
	AsUser      bool         `json:"as_user,omitempty"`
	IconEmoji   string       `json:"icon_emoji,omitempty"`
	IconURL     string       `json:"icon_url,omitempty"`
	ThreadTS    string       `json:"thread_ts,omitempty"`
	LinkNames   bool         `json:"link_names,omitempty"`
	UnfurlLinks bool         `json:"unfurl_links,omitempty"`
	UnfurlMedia bool         `json:"unfurl_media,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

func (p *ChatPostMessagePayload) Method() string { return "chat.postMessage" }

func (p *ChatPostMessagePayload) Response() Response { return &ChatPostMessageResponse{} }

// ChatPostMessageResponse is the result of chat.postMessage.
type ChatPostMessageResponse struct {
	BaseResponse
	Channel string `json:"channel,omitempty"`
	TS      string `json:"ts,omitempty"`
}

// ChatUpdatePayload edits a previously posted message, addressed by its
// channel and timestamp. Wire method: chat.update.
type ChatUpdatePayload struct {
	Channel     string       `json:"channel"`
	TS          string       `json:"ts"`
	Text        string       `json:"text"`
	LinkNames   bool         `json:"link_names,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

func (p *ChatUpdatePayload) Method() string { return "chat.update" }

func (p *ChatUpdatePayload) Response() Response { return &ChatUpdateResponse{} }

// ChatUpdateResponse is the result of chat.update.
type ChatUpdateResponse struct {
	BaseResponse
	Channel string `json:"channel,omitempty"`
	TS      string `json:"ts,omitempty"`
	Text    string `json:"text,omitempty"`
}

// ChatDeletePayload removes a message. Wire method: chat.delete.
type ChatDeletePayload struct {
	Channel string `json:"channel"`
	TS      string `json:"ts"`
}

func (p *ChatDeletePayload) Method() string { return "chat.delete" }

func (p *ChatDeletePayload) Response() Response { return &ChatDeleteResponse{} }

// ChatDeleteResponse is the result of chat.delete.
type ChatDeleteResponse struct {
	BaseResponse
	Channel string `json:"channel,omitempty"`
	TS      string `json:"ts,omitempty"`
}
