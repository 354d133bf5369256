package chat

import "github.com/fwojciec/lawchat"

// Greeting returns the assistant's opening message in lang.
func Greeting(lang lawchat.Language) string {
	if lang == lawchat.LanguageNepali {
		return "नमस्कार! म नेपाल कानून AI सहायक हुँ। तपाईं नेपाली संविधान र कानुनी प्रावधानहरूको बारेमा प्रश्न सोध्न सक्नुहुन्छ। कसरी सहायता गर्न सक्छु?"
	}
	return "Hello! I am the Nepal Law AI assistant. You can ask questions about the Constitution of Nepal and its legal provisions. How can I help?"
}

// Apology returns the fallback answer used when no answer could be
// generated.
func Apology(lang lawchat.Language) string {
	if lang == lawchat.LanguageNepali {
		return "माफ गर्नुहोस्, अहिले जवाफ दिन सकिएन। कृपया केही बेरपछि फेरि प्रयास गर्नुहोस्।"
	}
	return "Sorry, I couldn't answer that right now. Please try again in a moment."
}

// SampleQuestions returns suggested questions for an empty conversation.
func SampleQuestions() []string {
	return []string{
		"What are fundamental rights in Nepal?",
		"नेपालको संविधानमा मौलिक अधिकारहरू के के छन्?",
		"How can I file a case in court?",
		"What is the procedure for citizenship?",
		"संविधानसभाको शक्ति के छ?",
	}
}
