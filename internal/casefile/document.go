// Package casefile loads dispatch-interval case documents and exposes typed
// attribute lookups over them.
package casefile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Document is a decoded dispatch-interval casefile. The underlying structure
// is the nested key/value tree under NEMSPDCaseFile.
type Document struct {
	root map[string]interface{}
}

// NewDocument wraps an already-decoded casefile tree.
func NewDocument(root map[string]interface{}) *Document {
	return &Document{root: root}
}

// Load reads and decodes a JSON casefile from disk.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read casefile %s: %w", path, err)
	}
	return Decode(raw)
}

// Decode decodes a JSON casefile from raw bytes.
func Decode(raw []byte) (*Document, error) {
	var root map[string]interface{}
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("failed to decode casefile: %w", err)
	}
	return &Document{root: root}, nil
}

// section walks the nested tree along path and returns the value at the end.
func (d *Document) section(path ...string) (interface{}, error) {
	var current interface{} = d.root
	for i, key := range path {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil, &AttributeNotFoundError{
				Entity:    strings.Join(path[:i], "."),
				Attribute: key,
				Context:   "document",
			}
		}
		current, ok = node[key]
		if !ok {
			return nil, &AttributeNotFoundError{
				Entity:    strings.Join(path[:i], "."),
				Attribute: key,
				Context:   "document",
			}
		}
	}
	return current, nil
}
