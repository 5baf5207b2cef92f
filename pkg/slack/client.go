package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/lifeofguenter/slack/pkg/api"
	"github.com/lifeofguenter/slack/pkg/events"
	"github.com/lifeofguenter/slack/pkg/serializer"
	"github.com/lifeofguenter/slack/pkg/transport"
)

// DefaultBaseURL is the Web API endpoint prefix. Wire method names are
// appended directly, e.g. "https://slack.com/api/chat.postMessage".
const DefaultBaseURL = "https://slack.com/api/"

// tokenField is the reserved field under which the auth token travels.
const tokenField = "token"

// Client is the Web API client. Its configuration is fixed at
// construction; only listener registration mutates state afterwards, and
// that is append-only and safe for concurrent use.
type Client struct {
	token      string
	baseURL    string
	transport  transport.Transport
	serializer serializer.Serializer
	notifier   *events.Notifier

	httpTimeout time.Duration
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the Web API endpoint prefix. A trailing slash is
// appended when missing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" && baseURL[len(baseURL)-1] != '/' {
			baseURL += "/"
		}
		c.baseURL = baseURL
	}
}

// WithTransport substitutes the HTTP transport. Useful for tests and for
// wrapping the default transport with instrumentation.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithSerializer substitutes the wire-format serializer. The
// implementation must be format-symmetric: identical field-naming rules
// for serialization and deserialization.
func WithSerializer(s serializer.Serializer) Option {
	return func(c *Client) { c.serializer = s }
}

// WithNotifier substitutes the lifecycle notifier, allowing one notifier
// to be shared between clients.
func WithNotifier(n *events.Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithHTTPTimeout sets the per-exchange timeout of the default
// transport. Ignored when WithTransport is also given.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpTimeout = d }
}

// New creates a Client with the given instance token. The token may be
// empty if every call supplies its own via WithToken.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = transport.New(c.httpTimeout)
	}
	if c.serializer == nil {
		c.serializer = serializer.NewJSON()
	}
	if c.notifier == nil {
		c.notifier = events.NewNotifier()
	}
	return c
}

// AddListener registers a lifecycle listener. Registration order is
// delivery order.
func (c *Client) AddListener(kind events.Kind, l events.Listener) {
	c.notifier.AddListener(kind, l)
}

// Send performs one typed API call. The payload's wire method and
// response type are resolved from the payload itself; its fields are
// serialized through the wire format into a generic field mapping, so
// the serializer's naming rules apply exactly as they would on the wire.
// The parsed response is decoded into the payload's declared response
// type.
func (c *Client) Send(ctx context.Context, payload api.Payload, opts ...CallOption) (api.Response, error) {
	if payload == nil {
		return nil, api.NewArgumentError("payload must not be nil")
	}
	method := payload.Method()
	if method == "" {
		return nil, api.NewArgumentError("payload declares no wire method")
	}

	fields, err := c.payloadFields(payload)
	if err != nil {
		return nil, err
	}

	raw, err := c.SendRaw(ctx, method, fields, opts...)
	if err != nil {
		return nil, err
	}

	return c.deserializeResponse(payload, raw)
}

// SendRaw performs one API call with a generic field mapping and returns
// the parsed response map verbatim. It is both the generic calling
// convention and the transmission step behind Send: it validates that a
// token is resolvable before any I/O, injects it under the reserved
// "token" field, notifies BeforeSend, performs the exchange, parses the
// body, asserts the top-level JSON value is an object, and notifies
// AfterReceive.
func (c *Client) SendRaw(ctx context.Context, method string, fields map[string]any, opts ...CallOption) (map[string]any, error) {
	if method == "" {
		return nil, api.NewArgumentError("wire method must not be empty")
	}

	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}

	// Per-call override wins over the instance token. Absence of both is
	// a hard error before any network activity.
	token := co.token
	if token == "" {
		token = c.token
	}
	if token == "" {
		return nil, api.NewArgumentError("no auth token available: set an instance token or pass WithToken")
	}

	outgoing := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		outgoing[k] = v
	}
	outgoing[tokenField] = token

	if err := c.notifier.Notify(events.BeforeSend, method, outgoing); err != nil {
		return nil, api.NewListenerError("before-send listener aborted the call", err)
	}

	values, err := encodeFields(outgoing)
	if err != nil {
		return nil, api.NewSerializationError("encoding request fields", err)
	}

	verb := co.httpMethod
	if verb == "" {
		verb = http.MethodGet
	}

	status, body, err := c.transport.Exchange(ctx, verb, c.baseURL+method, values)
	if err != nil {
		return nil, api.NewTransportError(fmt.Sprintf("calling %s", method), err)
	}
	if status < 200 || status >= 300 {
		return nil, api.NewTransportError(fmt.Sprintf("%s returned HTTP %d", method, status), nil)
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, api.NewResponseShapeError(fmt.Sprintf("parsing %s response body", method), err)
	}
	object, ok := parsed.(map[string]any)
	if !ok {
		return nil, api.NewResponseShapeError(
			fmt.Sprintf("%s response is not a JSON object (got %T)", method, parsed), nil)
	}

	if err := c.notifier.Notify(events.AfterReceive, method, object); err != nil {
		return nil, api.NewListenerError("after-receive listener aborted the call", err)
	}

	return object, nil
}

// payloadFields serializes a typed payload and parses the wire text back
// into a generic field mapping. Round-tripping through the wire format,
// rather than reflecting over the struct, guarantees the mapping carries
// exactly the names and values the serializer would put on the wire.
func (c *Client) payloadFields(payload api.Payload) (map[string]any, error) {
	data, err := c.serializer.Serialize(payload)
	if err != nil {
		return nil, api.NewSerializationError("serializing payload", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, api.NewSerializationError("reading serialized payload as a field mapping", err)
	}
	return fields, nil
}

// deserializeResponse decodes the raw response map into the payload's
// declared response type. The decode target is checked both before and
// after decoding so a misbehaving payload or serializer cannot hand the
// caller a nil or wrongly shaped response.
func (c *Client) deserializeResponse(payload api.Payload, raw map[string]any) (api.Response, error) {
	response := payload.Response()
	if response == nil {
		return nil, api.NewResponseShapeError(
			fmt.Sprintf("payload for %s declares no response type", payload.Method()), nil)
	}
	rv := reflect.ValueOf(response)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, api.NewResponseShapeError(
			fmt.Sprintf("response descriptor for %s is not a usable decode target", payload.Method()), nil)
	}

	data, err := c.serializer.Serialize(raw)
	if err != nil {
		return nil, api.NewSerializationError("re-encoding response mapping", err)
	}
	if err := c.serializer.Deserialize(data, response); err != nil {
		return nil, api.NewSerializationError(
			fmt.Sprintf("decoding %s response", payload.Method()), err)
	}
	return response, nil
}
