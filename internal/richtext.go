package internal

import (
	"encoding/json"
	"strings"
)

// richTextNode is a node in the Lexical-style rich text tree Cursor stores
// alongside plain text. Leaf nodes carry the text.
type richTextNode struct {
	Type     string         `json:"type"`
	Text     string         `json:"text,omitempty"`
	Children []richTextNode `json:"children,omitempty"`
}

type richTextRoot struct {
	Root richTextNode `json:"root"`
}

// ExtractRichText parses a serialized rich text tree and collects leaf
// text depth-first, joined with single spaces. A tree that parses but
// holds no leaf text yields "" so the empty record can be dropped; only
// input that fails to parse in any known shape degrades to the raw input
// unchanged.
func ExtractRichText(serialized string) string {
	if strings.TrimSpace(serialized) == "" {
		return ""
	}

	parsed := false

	var root richTextRoot
	if err := json.Unmarshal([]byte(serialized), &root); err == nil {
		parsed = true
		if text := collectLeafText(root.Root); text != "" {
			return text
		}
	}

	var node richTextNode
	if err := json.Unmarshal([]byte(serialized), &node); err == nil {
		parsed = true
		if text := collectLeafText(node); text != "" {
			return text
		}
	}

	var nodes []richTextNode
	if err := json.Unmarshal([]byte(serialized), &nodes); err == nil {
		parsed = true
		var leaves []string
		for _, n := range nodes {
			appendLeaves(n, &leaves)
		}
		if len(leaves) > 0 {
			return strings.Join(leaves, " ")
		}
	}

	if parsed {
		return ""
	}

	// Unknown shape: hand back the raw input rather than losing it.
	return serialized
}

func collectLeafText(node richTextNode) string {
	var leaves []string
	appendLeaves(node, &leaves)
	return strings.Join(leaves, " ")
}

// appendLeaves walks the tree pre-order, collecting non-empty leaf text.
func appendLeaves(node richTextNode, leaves *[]string) {
	if node.Text != "" {
		*leaves = append(*leaves, node.Text)
	}
	for _, child := range node.Children {
		appendLeaves(child, leaves)
	}
}
