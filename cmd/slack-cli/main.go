// Command slack-cli sends a single Slack Web API call and prints the
// JSON response.
//
// Usage:
//
//	slack-cli [flags] <method>
//
//	slack-cli --token xoxb-... -f channel=C024BE91L -f text="deploy done" --post chat.postMessage
//
// Configuration is read from the layered config (slack.yaml, SLACK_*
// environment variables); flags override it.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/lifeofguenter/slack/pkg/config"
	"github.com/lifeofguenter/slack/pkg/events"
	"github.com/lifeofguenter/slack/pkg/observability"
	"github.com/lifeofguenter/slack/pkg/slack"
	"github.com/lifeofguenter/slack/pkg/transport"
)

func main() {
	if err := run(); err != nil {
		slog.Error("call failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		token      string
		fieldArgs  []string
		usePost    bool
		timeout    time.Duration
		verbose    bool
	)

	pflag.StringVarP(&configPath, "config", "c", "", "path to config file")
	pflag.StringVarP(&token, "token", "t", "", "auth token (overrides config)")
	pflag.StringArrayVarP(&fieldArgs, "field", "f", nil, "request field as key=value (repeatable)")
	pflag.BoolVar(&usePost, "post", false, "send as POST instead of GET")
	pflag.DurationVar(&timeout, "timeout", 0, "HTTP timeout (overrides config)")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log lifecycle checkpoints and exchanges")
	pflag.Parse()

	if pflag.NArg() != 1 {
		return fmt.Errorf("expected exactly one wire method argument, got %d", pflag.NArg())
	}
	method := pflag.Arg(0)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if token != "" {
		cfg.Token = token
	}
	if timeout != 0 {
		cfg.Timeout = timeout
	}

	fields, err := parseFields(fieldArgs)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(verbose),
	}))

	var tr transport.Transport = transport.New(cfg.Timeout)
	if cfg.Metrics {
		tr = observability.InstrumentTransport(tr)
	}
	if verbose {
		tr = observability.LogExchanges(tr, logger)
	}

	client := slack.New(cfg.Token,
		slack.WithBaseURL(cfg.BaseURL),
		slack.WithTransport(tr),
	)
	if verbose {
		client.AddListener(events.BeforeSend, observability.Logging(logger))
		client.AddListener(events.AfterReceive, observability.Logging(logger))
	}

	var opts []slack.CallOption
	if usePost {
		opts = append(opts, slack.WithHTTPMethod(http.MethodPost))
	}

	raw, err := client.SendRaw(context.Background(), method, fields, opts...)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// parseFields turns repeated key=value flags into a field mapping.
func parseFields(args []string) (map[string]any, error) {
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid field %q, expected key=value", arg)
		}
		fields[key] = value
	}
	return fields, nil
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
