// Package corpus provides the in-memory article index and search engine
// built once from a document tree.
package corpus

import (
	_ "embed"
	"encoding/json"
	"io"

	"github.com/fwojciec/lawchat"
)

//go:embed constitution.json
var constitutionJSON []byte

// Ensure JSONParser implements lawchat.TreeParser at compile time.
var _ lawchat.TreeParser = (*JSONParser)(nil)

// JSONParser reads a document tree from its JSON representation.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// ParseTree decodes and validates a tree.
func (p *JSONParser) ParseTree(r io.Reader) (*lawchat.DocumentTree, error) {
	var tree lawchat.DocumentTree
	if err := json.NewDecoder(r).Decode(&tree); err != nil {
		return nil, lawchat.Errorf(lawchat.EINVALID, "failed to parse corpus JSON: %v", err)
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return &tree, nil
}

// DefaultTree returns the embedded sample constitution.
func DefaultTree() *lawchat.DocumentTree {
	var tree lawchat.DocumentTree
	if err := json.Unmarshal(constitutionJSON, &tree); err != nil {
		panic("corpus: embedded constitution is malformed: " + err.Error())
	}
	return &tree
}

// Default returns an index over the embedded sample constitution.
func Default() *Index {
	idx, err := NewIndex(DefaultTree())
	if err != nil {
		panic("corpus: embedded constitution is invalid: " + err.Error())
	}
	return idx
}
