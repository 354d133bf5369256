// Package slog provides logging decorators built on log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lawchat"
)

// Ensure LoggingAnswerer implements lawchat.Answerer.
var _ lawchat.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with logging.
type LoggingAnswerer struct {
	next   lawchat.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next lawchat.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer and logs the operation.
func (a *LoggingAnswerer) Answer(ctx context.Context, req lawchat.AnswerRequest) (text string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		a.logger.Log(ctx, level, "answer",
			"language", string(req.Language),
			"citations", len(req.Citations),
			"history", len(req.History),
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Answer(ctx, req)
}

// Ensure LoggingResponder implements lawchat.Responder.
var _ lawchat.Responder = (*LoggingResponder)(nil)

// LoggingResponder wraps a Responder with logging.
type LoggingResponder struct {
	next   lawchat.Responder
	logger *slog.Logger
}

// NewLoggingResponder creates a new LoggingResponder.
func NewLoggingResponder(next lawchat.Responder, logger *slog.Logger) *LoggingResponder {
	return &LoggingResponder{next: next, logger: logger}
}

// Resolve delegates to the wrapped responder and logs the outcome.
func (r *LoggingResponder) Resolve(ctx context.Context, q lawchat.Query) (ans *lawchat.Answer, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"language", string(q.Language),
			"duration", time.Since(begin),
		}
		if ans != nil {
			attrs = append(attrs, "citations", len(ans.Citations), "degraded", ans.Degraded)
			if ans.Degraded {
				attrs = append(attrs, "failure", ans.Failure)
			}
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		r.logger.Info("resolve", attrs...)
	}(time.Now())
	return r.next.Resolve(ctx, q)
}
