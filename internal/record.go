package internal

import "encoding/json"

// RoleHint is the role signal a parser extracted before normalization.
type RoleHint int

const (
	RoleUnknown RoleHint = iota
	RoleUser
	RoleAssistant
)

// MapTypeCode maps the integer role codes used by the Cursor stores to a
// RoleHint. 1 is the initiator; every other code, including absent (0),
// is the responder.
func MapTypeCode(code int) RoleHint {
	if code == 1 {
		return RoleUser
	}
	return RoleAssistant
}

// RawRecord is one extracted message before normalization. It lives only
// between a parser and the assembler.
type RawRecord struct {
	Role RoleHint

	// Text holds content the parser already reduced to plain text
	// (e.g. a bubble's text field, or rich-text extraction output).
	// When empty, Content carries the still-opaque representation
	// (plain JSON string or typed content-part array).
	Text    string
	Content json.RawMessage

	// Timestamp is the raw source value: string, float64, int64, or nil.
	Timestamp any

	// Pasted carries source attachments through untouched.
	Pasted map[string]json.RawMessage
}

// Conversation is one parser output group: a session key plus the raw
// records that belong to it, with whatever source metadata the format had.
type Conversation struct {
	// Key is the stable source key; used for identity derivation when
	// NativeID is empty.
	Key string

	// NativeID is the format's own stable identifier (a UUID-like
	// primary key), used verbatim when present.
	NativeID string

	Agent   AgentType
	Source  Source
	Records []RawRecord

	// Summary and Title come from explicit in-stream declarations;
	// last-seen wins within one artifact.
	Summary string
	Title   string

	WorkspaceID string

	// PathHints are candidate absolute paths for project inference, in
	// priority order. WorkspaceFolder is the explicit workspace folder
	// when the format declares one.
	PathHints       []string
	WorkspaceFolder string
}
