// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
)

const sentryFlushTimeout = 2 * time.Second

// setupSentry enables error reporting when SENTRY_DSN is set. The returned
// function flushes pending events.
func setupSentry() func() {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return func() {}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          "stemfx@" + Version,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Printf("sentry disabled: %v", err)
		return func() {}
	}

	return func() { sentry.Flush(sentryFlushTimeout) }
}

func captureError(err error) {
	sentry.CaptureException(err)
}

// startTransaction opens a Sentry transaction for a command, tagged with the
// run ID. Without SENTRY_DSN it is a no-op.
func (a *app) startTransaction(ctx context.Context, name string) *sentry.Span {
	tx := sentry.StartTransaction(ctx, name)
	tx.SetTag("run_id", a.runID)

	return tx
}

// finish records the outcome on tx and closes it.
func finish(tx *sentry.Span, err error) {
	if err != nil {
		tx.SetTag("success", "false")
		tx.Status = sentry.SpanStatusInternalError
	} else {
		tx.SetTag("success", "true")
		tx.Status = sentry.SpanStatusOK
	}
	tx.Finish()
}
