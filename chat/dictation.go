package chat

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/lawchat"
)

// Dictation feeds speech recognized by a VoiceInput into a session's draft
// input. It never submits on its own.
type Dictation struct {
	Voice    lawchat.VoiceInput
	Notifier lawchat.Notifier
	Session  *Session

	listening atomic.Bool
}

// NewDictation creates a Dictation for session.
func NewDictation(voice lawchat.VoiceInput, notifier lawchat.Notifier, session *Session) *Dictation {
	return &Dictation{Voice: voice, Notifier: notifier, Session: session}
}

// Listening reports whether a recognition is in progress.
func (d *Dictation) Listening() bool {
	return d.listening.Load()
}

// Listen runs one recognition and blocks until it ends. A recognized
// transcript replaces the session's draft input. Missing platform support
// and recognition failures are reported through the Notifier and leave the
// conversation untouched. Calls made while already listening are ignored.
func (d *Dictation) Listen(ctx context.Context) {
	if d.Voice == nil || !d.Voice.IsSupported() {
		d.notify(lawchat.Notification{
			Code:        lawchat.EUNSUPPORTED,
			Title:       "Voice input not supported",
			Description: "This platform doesn't support voice recognition.",
		})
		return
	}
	if !d.listening.CompareAndSwap(false, true) {
		return
	}
	defer d.listening.Store(false)

	events, err := d.Voice.Listen(ctx, d.Session.State().Language())
	if err != nil {
		d.notifyFailure()
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.Kind {
			case lawchat.VoiceResult:
				d.Session.SetInput(ev.Transcript)
				return
			case lawchat.VoiceError:
				d.notifyFailure()
				return
			case lawchat.VoiceEnd:
				return
			}
		}
	}
}

func (d *Dictation) notifyFailure() {
	d.notify(lawchat.Notification{
		Code:        lawchat.EUNAVAILABLE,
		Title:       "Voice input error",
		Description: "Could not recognize speech. Please try again.",
	})
}

func (d *Dictation) notify(n lawchat.Notification) {
	if d.Notifier != nil {
		d.Notifier.Notify(n)
	}
}
