package lawchat

import "context"

// VoiceEventKind identifies a speech recognition event.
type VoiceEventKind int

// VoiceEventKind constants.
const (
	VoiceResult VoiceEventKind = iota + 1
	VoiceError
	VoiceEnd
)

// VoiceEvent is emitted by a VoiceInput while listening.
type VoiceEvent struct {
	Kind       VoiceEventKind
	Transcript string // Set for VoiceResult
	Reason     string // Set for VoiceError
}

// VoiceInput is a speech-to-text capability provided by the host platform.
type VoiceInput interface {
	// IsSupported reports whether the platform can recognize speech.
	// It must be checked before Listen.
	IsSupported() bool

	// Listen begins recognizing speech. The returned channel delivers at
	// most one VoiceResult or VoiceError, optionally followed by VoiceEnd,
	// and is then closed.
	Listen(ctx context.Context, lang Language) (<-chan VoiceEvent, error)
}

// Notification is a transient, non-fatal message shown to the user.
type Notification struct {
	Code        string
	Title       string
	Description string
}

// Notifier surfaces notifications to the user.
type Notifier interface {
	Notify(n Notification)
}
