package i18n

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Node is one value in a translation tree: either a leaf string or a nested
// object. The two concrete types are the only implementations.
type Node interface {
	isNode()
}

// StringNode is a leaf translation string
type StringNode string

// ObjectNode is a nested group of translations keyed by segment
type ObjectNode map[string]Node

func (StringNode) isNode() {}
func (ObjectNode) isNode() {}

// ParseTree decodes a JSON translation resource into a tree. Only strings
// and objects are valid values; anything else marks the resource malformed.
func ParseTree(data []byte) (ObjectNode, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode translation resource: %w", err)
	}
	tree, err := buildObject(raw, "")
	if err != nil {
		return nil, err
	}
	return tree, nil
}

func buildObject(raw map[string]any, path string) (ObjectNode, error) {
	obj := make(ObjectNode, len(raw))
	for key, value := range raw {
		keyPath := key
		if path != "" {
			keyPath = path + "." + key
		}
		switch v := value.(type) {
		case string:
			obj[key] = StringNode(v)
		case map[string]any:
			child, err := buildObject(v, keyPath)
			if err != nil {
				return nil, err
			}
			obj[key] = child
		default:
			return nil, fmt.Errorf("translation key %q holds %T, want string or object", keyPath, value)
		}
	}
	return obj, nil
}

// Get descends the tree along a dotted path. It returns false at the first
// missing segment and never panics on any input.
func (t ObjectNode) Get(path string) (Node, bool) {
	current := Node(t)
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(ObjectNode)
		if !ok {
			return nil, false
		}
		next, ok := obj[segment]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Lookup returns the string at a dotted path, or def if the path is missing
// or resolves to a nested object rather than a leaf.
func Lookup(tree ObjectNode, path, def string) string {
	node, ok := tree.Get(path)
	if !ok {
		return def
	}
	s, ok := node.(StringNode)
	if !ok {
		return def
	}
	return string(s)
}
