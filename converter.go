package lawchat

// Converter converts an HTML fragment to Markdown.
type Converter interface {
	// Convert transforms an article body given as HTML into Markdown text
	// suitable for display and ranking.
	Convert(html string) (string, error)
}
