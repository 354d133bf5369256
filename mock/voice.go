package mock

import (
	"context"

	"github.com/fwojciec/lawchat"
)

var _ lawchat.VoiceInput = (*VoiceInput)(nil)

// VoiceInput is a mock implementation of lawchat.VoiceInput.
type VoiceInput struct {
	IsSupportedFn func() bool
	ListenFn      func(ctx context.Context, lang lawchat.Language) (<-chan lawchat.VoiceEvent, error)
}

func (v *VoiceInput) IsSupported() bool {
	return v.IsSupportedFn()
}

func (v *VoiceInput) Listen(ctx context.Context, lang lawchat.Language) (<-chan lawchat.VoiceEvent, error) {
	return v.ListenFn(ctx, lang)
}

var _ lawchat.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of lawchat.Notifier.
type Notifier struct {
	NotifyFn func(n lawchat.Notification)
}

func (n *Notifier) Notify(notification lawchat.Notification) {
	n.NotifyFn(notification)
}
