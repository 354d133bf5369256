package lawchat

import "time"

// Role identifies the author of a message.
type Role string

// Role constants.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Language is the conversation language.
type Language string

// Language constants. English is the primary language.
const (
	LanguageEnglish Language = "en"
	LanguageNepali  Language = "ne"
)

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageNepali
}

// Locale returns the BCP 47 tag used by speech engines.
func (l Language) Locale() string {
	if l == LanguageNepali {
		return "ne-NP"
	}
	return "en-US"
}

// MessageID identifies a message within a conversation. IDs are strictly
// increasing in append order.
type MessageID uint64

// Message is one turn of a conversation.
type Message struct {
	ID        MessageID  `json:"id"`
	Role      Role       `json:"role"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	Citations []Citation `json:"citations,omitempty"` // Always empty for user messages
}
