package internal

import "encoding/json"

// AgentType identifies which assistant produced a session.
type AgentType string

const (
	AgentClaudeCode AgentType = "claude_code"
	AgentCursor     AgentType = "cursor"
	AgentCodex      AgentType = "codex"
	AgentWindsurf   AgentType = "windsurf"
	AgentOther      AgentType = "other"
)

// Source identifies the on-disk format a session was extracted from.
type Source string

const (
	SourceClaudeCode     Source = "claude_code"
	SourceCursorComposer Source = "cursor-composer"
	SourceCursorCopilot  Source = "cursor-copilot"
)

// Session represents one normalized chat session, ready for export or upsert.
type Session struct {
	ID           string    `json:"id"`
	TimestampIso string    `json:"timestamp"`
	Messages     []Message `json:"messages"`
	AgentType    AgentType `json:"agent_type"`
	Metadata     Metadata  `json:"metadata"`
}

// Message represents a normalized chat turn within a session.
type Message struct {
	DisplayText    string                     `json:"display_text"`
	Role           string                     `json:"role"` // "user" or "assistant"
	TimestampIso   string                     `json:"timestamp"`
	PastedContents map[string]json.RawMessage `json:"pasted_contents,omitempty"`
}

// Metadata contains additional session information. Reserved keys are
// explicit fields; anything format-specific goes into Extra.
type Metadata struct {
	ProjectPath      string            `json:"project_path,omitempty"`
	ProjectName      string            `json:"project_name,omitempty"`
	ConversationName string            `json:"conversation_name,omitempty"`
	WorkspaceID      string            `json:"workspace_id,omitempty"`
	Source           Source            `json:"source"`
	Summary          string            `json:"summary,omitempty"`
	Extra            map[string]string `json:"extra,omitempty"`
}
