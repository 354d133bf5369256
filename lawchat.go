// Package lawchat provides the core of a legal assistant over a fixed body of
// constitutional articles: a conversation session that turns free-text
// questions into answers with ranked supporting citations, and a document
// index for browsing and searching the article corpus.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goquery/) or after
// the concept they implement (e.g., corpus/, lexical/, chat/).
package lawchat
