package observability

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/lifeofguenter/slack/pkg/events"
	"github.com/lifeofguenter/slack/pkg/transport"
)

// InstrumentTransport wraps a Transport to record call metrics.
//
// It captures:
//   - slack_client_calls_total (counter): per exchange with wire method and outcome labels
//   - slack_client_call_duration_seconds (histogram): exchange duration per wire method
func InstrumentTransport(next transport.Transport) transport.Transport {
	return transportFunc(func(ctx context.Context, verb, rawURL string, fields url.Values) (int, []byte, error) {
		start := time.Now()
		status, body, err := next.Exchange(ctx, verb, rawURL, fields)
		duration := time.Since(start).Seconds()

		method := wireMethod(rawURL)
		outcome := "error"
		if err == nil {
			outcome = strconv.Itoa(status/100) + "xx"
		}

		CallsTotal.WithLabelValues(method, outcome).Inc()
		CallDuration.WithLabelValues(method).Observe(duration)

		return status, body, err
	})
}

// LogExchanges wraps a Transport to emit one structured log entry per
// exchange, with wire method, verb, duration, status, and error.
func LogExchanges(next transport.Transport, logger *slog.Logger) transport.Transport {
	if logger == nil {
		logger = slog.Default()
	}
	return transportFunc(func(ctx context.Context, verb, rawURL string, fields url.Values) (int, []byte, error) {
		start := time.Now()
		status, body, err := next.Exchange(ctx, verb, rawURL, fields)

		attrs := []slog.Attr{
			slog.String("method", wireMethod(rawURL)),
			slog.String("verb", verb),
			slog.Duration("duration", time.Since(start)),
			slog.Int("status", status),
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
			logger.LogAttrs(ctx, slog.LevelError, "exchange failed", attrs...)
		} else {
			logger.LogAttrs(ctx, slog.LevelInfo, "exchange completed", attrs...)
		}

		return status, body, err
	})
}

// Logging returns a lifecycle listener that logs each checkpoint at
// debug level. Register it for both events.BeforeSend and
// events.AfterReceive to trace calls end to end.
func Logging(logger *slog.Logger) events.Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return func(e events.Event) error {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "lifecycle checkpoint",
			slog.String("checkpoint", e.Kind.String()),
			slog.String("method", e.Method),
			slog.Int("fields", len(e.Data)),
		)
		return nil
	}
}

// transportFunc adapts a function to the Transport interface.
type transportFunc func(ctx context.Context, verb, rawURL string, fields url.Values) (int, []byte, error)

func (f transportFunc) Exchange(ctx context.Context, verb, rawURL string, fields url.Values) (int, []byte, error) {
	return f(ctx, verb, rawURL, fields)
}

// wireMethod extracts the wire method label from the exchange URL. The
// client appends the method as the final path segment.
func wireMethod(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}
	method := path.Base(u.Path)
	if method == "." || method == "/" || method == "" {
		return "unknown"
	}
	return method
}
