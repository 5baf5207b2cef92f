package slack

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// callOptions holds per-call settings.
type callOptions struct {
	token      string
	httpMethod string
}

// CallOption adjusts a single Send or SendRaw invocation.
type CallOption func(*callOptions)

// WithToken overrides the instance token for this call only.
func WithToken(token string) CallOption {
	return func(co *callOptions) { co.token = token }
}

// WithHTTPMethod selects the HTTP verb for this call. The default is
// GET; form-style submissions use http.MethodPost.
func WithHTTPMethod(verb string) CallOption {
	return func(co *callOptions) { co.httpMethod = verb }
}

// encodeFields flattens a field mapping into url.Values. Scalars become
// their canonical string form; arrays and nested objects are embedded as
// JSON text, which is how the Web API expects structured fields such as
// attachments.
func encodeFields(fields map[string]any) (url.Values, error) {
	values := make(url.Values, len(fields))
	for name, value := range fields {
		s, err := fieldString(value)
		if err != nil {
			return nil, err
		}
		values.Set(name, s)
	}
	return values, nil
}

func fieldString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
