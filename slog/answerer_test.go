package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/lawchat"
	"github.com/fwojciec/lawchat/mock"
	lcslog "github.com/fwojciec/lawchat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingAnswerer_Answer(t *testing.T) {
	t.Parallel()

	t.Run("logs successful answer", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Answerer{AnswerFn: func(context.Context, lawchat.AnswerRequest) (string, error) {
			return "Article 17 applies.", nil
		}}

		text, err := lcslog.NewLoggingAnswerer(inner, logger).Answer(context.Background(), lawchat.AnswerRequest{
			Query:     "freedom?",
			Language:  lawchat.LanguageNepali,
			Citations: []lawchat.Citation{{ArticleNumber: 17}},
		})

		require.NoError(t, err)
		assert.Equal(t, "Article 17 applies.", text)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=answer")
		assert.Contains(t, output, "language=ne")
		assert.Contains(t, output, "citations=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs errors at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Answerer{AnswerFn: func(context.Context, lawchat.AnswerRequest) (string, error) {
			return "", errors.New("quota exceeded")
		}}

		_, err := lcslog.NewLoggingAnswerer(inner, logger).Answer(context.Background(), lawchat.AnswerRequest{Query: "q"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "quota exceeded")
	})
}

func TestLoggingResponder_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("logs degraded answers with failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Responder{ResolveFn: func(context.Context, lawchat.Query) (*lawchat.Answer, error) {
			return &lawchat.Answer{Text: "sorry", Citations: []lawchat.Citation{}, Degraded: true, Failure: "timeout"}, nil
		}}

		ans, err := lcslog.NewLoggingResponder(inner, logger).Resolve(context.Background(), lawchat.Query{Text: "q", Language: lawchat.LanguageEnglish})

		require.NoError(t, err)
		assert.True(t, ans.Degraded)
		output := buf.String()
		assert.Contains(t, output, "msg=resolve")
		assert.Contains(t, output, "degraded=true")
		assert.Contains(t, output, "failure=timeout")
	})

	t.Run("logs validation errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Responder{ResolveFn: func(context.Context, lawchat.Query) (*lawchat.Answer, error) {
			return nil, lawchat.Errorf(lawchat.EINVALID, "query required")
		}}

		_, err := lcslog.NewLoggingResponder(inner, logger).Resolve(context.Background(), lawchat.Query{})

		assert.Equal(t, lawchat.EINVALID, lawchat.ErrorCode(err))
		assert.Contains(t, buf.String(), "query required")
		assert.NotContains(t, buf.String(), "degraded=")
	})
}
