package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRichTextTree(t *testing.T) {
	serialized := `{
		"root": {
			"type": "root",
			"children": [
				{"type": "paragraph", "children": [
					{"type": "text", "text": "update"},
					{"type": "text", "text": "the"}
				]},
				{"type": "paragraph", "children": [
					{"type": "text", "text": "parser"}
				]}
			]
		}
	}`
	assert.Equal(t, "update the parser", ExtractRichText(serialized))
}

func TestExtractRichTextPreOrder(t *testing.T) {
	// A parent with its own text before nested children: parent text
	// comes first in a pre-order walk.
	serialized := `{"root": {"text": "head", "children": [{"text": "tail"}]}}`
	assert.Equal(t, "head tail", ExtractRichText(serialized))
}

func TestExtractRichTextBareNode(t *testing.T) {
	assert.Equal(t, "hi", ExtractRichText(`{"type":"text","text":"hi"}`))
}

func TestExtractRichTextNodeArray(t *testing.T) {
	assert.Equal(t, "a b", ExtractRichText(`[{"text":"a"},{"text":"b"}]`))
}

func TestExtractRichTextEmptyDocument(t *testing.T) {
	// A valid tree with no leaf text is an empty document, not an
	// unknown shape: the raw JSON must never surface as message text.
	empty := `{"root":{"type":"root","children":[{"type":"paragraph","children":[]}]}}`
	assert.Equal(t, "", ExtractRichText(empty))

	assert.Equal(t, "", ExtractRichText(`{"root":{}}`))
	assert.Equal(t, "", ExtractRichText(`[]`))
	assert.Equal(t, "", ExtractRichText(`{"type":"paragraph","children":[]}`))
}

func TestExtractRichTextMalformedDegradesToRaw(t *testing.T) {
	// Unparseable trees degrade to the raw serialized input, never an
	// error or a panic.
	raw := `{not json at all`
	assert.Equal(t, raw, ExtractRichText(raw))

	numeric := `42`
	assert.Equal(t, numeric, ExtractRichText(numeric))
}

func TestExtractRichTextEmpty(t *testing.T) {
	assert.Equal(t, "", ExtractRichText(""))
	assert.Equal(t, "", ExtractRichText("   "))
}
