package chat_test

import (
	"context"
	"testing"

	"github.com/fwojciec/lawchat"
	"github.com/fwojciec/lawchat/chat"
	"github.com/fwojciec/lawchat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voiceEmitting(events ...lawchat.VoiceEvent) *mock.VoiceInput {
	return &mock.VoiceInput{
		IsSupportedFn: func() bool { return true },
		ListenFn: func(context.Context, lawchat.Language) (<-chan lawchat.VoiceEvent, error) {
			ch := make(chan lawchat.VoiceEvent, len(events))
			for _, ev := range events {
				ch <- ev
			}
			close(ch)
			return ch, nil
		},
	}
}

func recordingNotifier(into *[]lawchat.Notification) *mock.Notifier {
	return &mock.Notifier{
		NotifyFn: func(n lawchat.Notification) { *into = append(*into, n) },
	}
}

func TestDictation_Listen(t *testing.T) {
	t.Parallel()

	t.Run("sets transcript as draft input without submitting", func(t *testing.T) {
		t.Parallel()

		s := newSession(&mock.Responder{})
		var notes []lawchat.Notification
		d := chat.NewDictation(voiceEmitting(
			lawchat.VoiceEvent{Kind: lawchat.VoiceResult, Transcript: "What is Article 17?"},
			lawchat.VoiceEvent{Kind: lawchat.VoiceEnd},
		), recordingNotifier(&notes), s)

		d.Listen(context.Background())

		assert.Equal(t, "What is Article 17?", s.State().Input())
		assert.Empty(t, s.Messages())
		assert.True(t, s.State().Idle())
		assert.Empty(t, notes)
		assert.False(t, d.Listening())
	})

	t.Run("passes session language to recognizer", func(t *testing.T) {
		t.Parallel()

		s := newSession(&mock.Responder{})
		s.SetLanguage(lawchat.LanguageNepali)
		var got lawchat.Language
		voice := &mock.VoiceInput{
			IsSupportedFn: func() bool { return true },
			ListenFn: func(_ context.Context, lang lawchat.Language) (<-chan lawchat.VoiceEvent, error) {
				got = lang
				ch := make(chan lawchat.VoiceEvent)
				close(ch)
				return ch, nil
			},
		}

		chat.NewDictation(voice, nil, s).Listen(context.Background())

		assert.Equal(t, lawchat.LanguageNepali, got)
		assert.Equal(t, "ne-NP", got.Locale())
	})

	t.Run("notifies when unsupported and never listens", func(t *testing.T) {
		t.Parallel()

		s := newSession(&mock.Responder{})
		var notes []lawchat.Notification
		voice := &mock.VoiceInput{
			IsSupportedFn: func() bool { return false },
			ListenFn: func(context.Context, lawchat.Language) (<-chan lawchat.VoiceEvent, error) {
				t.Fatal("Listen called on unsupported platform")
				return nil, nil
			},
		}

		chat.NewDictation(voice, recordingNotifier(&notes), s).Listen(context.Background())

		require.Len(t, notes, 1)
		assert.Equal(t, lawchat.EUNSUPPORTED, notes[0].Code)
		assert.Equal(t, chat.NewState(lawchat.LanguageEnglish), s.State())
	})

	t.Run("nil voice input counts as unsupported", func(t *testing.T) {
		t.Parallel()

		var notes []lawchat.Notification

		chat.NewDictation(nil, recordingNotifier(&notes), newSession(&mock.Responder{})).Listen(context.Background())

		require.Len(t, notes, 1)
		assert.Equal(t, lawchat.EUNSUPPORTED, notes[0].Code)
	})

	t.Run("notifies on recognition error and leaves state untouched", func(t *testing.T) {
		t.Parallel()

		s := newSession(&mock.Responder{})
		s.SetInput("typed draft")
		before := s.State()
		var notes []lawchat.Notification
		d := chat.NewDictation(voiceEmitting(
			lawchat.VoiceEvent{Kind: lawchat.VoiceError, Reason: "no-speech"},
		), recordingNotifier(&notes), s)

		d.Listen(context.Background())

		require.Len(t, notes, 1)
		assert.Equal(t, "Voice input error", notes[0].Title)
		assert.Equal(t, before, s.State())
	})

	t.Run("ignores events after result", func(t *testing.T) {
		t.Parallel()

		s := newSession(&mock.Responder{})
		var notes []lawchat.Notification
		d := chat.NewDictation(voiceEmitting(
			lawchat.VoiceEvent{Kind: lawchat.VoiceResult, Transcript: "first"},
			lawchat.VoiceEvent{Kind: lawchat.VoiceError, Reason: "late"},
		), recordingNotifier(&notes), s)

		d.Listen(context.Background())

		assert.Equal(t, "first", s.State().Input())
		assert.Empty(t, notes)
	})

	t.Run("end without result changes nothing", func(t *testing.T) {
		t.Parallel()

		s := newSession(&mock.Responder{})
		var notes []lawchat.Notification

		chat.NewDictation(voiceEmitting(lawchat.VoiceEvent{Kind: lawchat.VoiceEnd}), recordingNotifier(&notes), s).
			Listen(context.Background())

		assert.Empty(t, s.State().Input())
		assert.Empty(t, notes)
	})
}
