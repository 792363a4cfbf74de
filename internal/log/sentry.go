package log

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
)

var ErrClientInit = errors.New("failed to initialize sentry client")

// NewSentryClient creates a sentry client and binds it to the current hub so the slog
// sentry handler can deliver events through it.
func NewSentryClient(dsn string, buildVersion string) (*sentry.Client, error) {
	hub := sentry.CurrentHub()

	client, errClient := sentry.NewClient(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          buildVersion,
		AttachStacktrace: true,
	})
	if errClient != nil {
		return nil, errors.Join(errClient, ErrClientInit)
	}

	hub.BindClient(client)

	return client, nil
}

// FlushSentry waits for buffered events to be sent.
func FlushSentry(client *sentry.Client) {
	if client == nil {
		return
	}

	client.Flush(2 * time.Second)
}
