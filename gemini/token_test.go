package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/lawchat"
	"github.com/fwojciec/lawchat/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	tc, err := gemini.NewTokenCounter(gemini.DefaultModel)
	require.NoError(t, err)

	var _ lawchat.TokenCounter = tc

	t.Run("counts tokens in text", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "All citizens shall be equal before law.")

		require.NoError(t, err)
		assert.Positive(t, count)
	})

	t.Run("empty string returns zero", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("trims history to budget", func(t *testing.T) {
		t.Parallel()

		history := []lawchat.Message{
			{ID: 1, Content: "This Constitution is the fundamental law of Nepal. Any law inconsistent with this Constitution shall be void."},
			{ID: 2, Content: "Thanks"},
		}
		last, err := tc.CountTokens(context.Background(), "Thanks")
		require.NoError(t, err)

		got, err := lawchat.TrimHistory(context.Background(), tc, history, last)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, lawchat.MessageID(2), got[0].ID)
	})
}
