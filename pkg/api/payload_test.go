package api

import (
	"encoding/json"
	"testing"
)

// Compile-time checks that the bundled endpoint definitions satisfy the
// Payload contract.
var (
	_ Payload = (*ChatPostMessagePayload)(nil)
	_ Payload = (*ChatUpdatePayload)(nil)
	_ Payload = (*ChatDeletePayload)(nil)
	_ Payload = (*ImOpenPayload)(nil)
	_ Payload = (*ImClosePayload)(nil)
	_ Payload = (*APITestPayload)(nil)
	_ Payload = (*AuthTestPayload)(nil)
	_ Payload = (*ConversationsListPayload)(nil)
	_ Payload = (*UsersInfoPayload)(nil)
)

func TestPayloadMethods(t *testing.T) {
	tests := []struct {
		payload Payload
		want    string
	}{
		{&ChatPostMessagePayload{}, "chat.postMessage"},
		{&ChatUpdatePayload{}, "chat.update"},
		{&ChatDeletePayload{}, "chat.delete"},
		{&ImOpenPayload{}, "im.open"},
		{&ImClosePayload{}, "im.close"},
		{&APITestPayload{}, "api.test"},
		{&AuthTestPayload{}, "auth.test"},
		{&ConversationsListPayload{}, "conversations.list"},
		{&UsersInfoPayload{}, "users.info"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.payload.Method(); got != tt.want {
				t.Errorf("Method() = %q, want %q", got, tt.want)
			}
			if tt.payload.Response() == nil {
				t.Error("Response() returned nil descriptor")
			}
		})
	}
}

func TestBaseResponseSurface(t *testing.T) {
	ok := &BaseResponse{OK: true}
	if !ok.Okay() || ok.ErrorCode() != "" {
		t.Errorf("Okay() = %v, ErrorCode() = %q; want true, \"\"", ok.Okay(), ok.ErrorCode())
	}

	failed := &BaseResponse{OK: false, Error: "channel_not_found"}
	if failed.Okay() || failed.ErrorCode() != "channel_not_found" {
		t.Errorf("Okay() = %v, ErrorCode() = %q; want false, \"channel_not_found\"", failed.Okay(), failed.ErrorCode())
	}
}

func TestImOpenResponseDecoding(t *testing.T) {
	raw := `{"ok": true, "no_op": true, "already_open": false, "channel": {"id": "D024BE91L"}}`

	var resp ImOpenResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !resp.Okay() {
		t.Error("expected ok response")
	}
	if !resp.NoOp {
		t.Error("expected no_op to be true")
	}
	if resp.AlreadyOpen {
		t.Error("expected already_open to be false")
	}
	if resp.Channel.ID != "D024BE91L" {
		t.Errorf("channel.id = %q, want %q", resp.Channel.ID, "D024BE91L")
	}
}

func TestChatPostMessagePayloadWireNames(t *testing.T) {
	p := &ChatPostMessagePayload{
		Channel:  "C1234567890",
		Text:     "hello",
		ThreadTS: "1405894322.002768",
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if fields["channel"] != "C1234567890" {
		t.Errorf("channel = %v, want C1234567890", fields["channel"])
	}
	if fields["thread_ts"] != "1405894322.002768" {
		t.Errorf("thread_ts = %v, want 1405894322.002768", fields["thread_ts"])
	}
	if _, present := fields["username"]; present {
		t.Error("empty username should be omitted from the wire format")
	}
}
