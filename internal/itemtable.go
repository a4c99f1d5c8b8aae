package internal

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// chatDataKey is the ItemTable key the chat panel stores its tabs under.
const chatDataKey = "workbench.panel.aichat.view.aichat.chatdata"

// chatData is the chat-panel payload from a workspaceStorage ItemTable.
type chatData struct {
	Tabs []chatTab `json:"tabs"`
}

type chatTab struct {
	TabID        string       `json:"tabId,omitempty"`
	ChatTitle    string       `json:"chatTitle,omitempty"`
	LastSendTime int64        `json:"lastSendTime,omitempty"` // ms epoch
	Bubbles      []chatBubble `json:"bubbles"`
}

// chatBubble uses string role tags, unlike the composer store's integer
// codes. Anything other than "user" is the assistant.
type chatBubble struct {
	Type    string `json:"type"` // "user" or "ai"
	Text    string `json:"text,omitempty"`
	RawText string `json:"rawText,omitempty"`
}

// workspaceMeta is the workspace.json file next to each workspace's state
// database; its folder URI drives project inference.
type workspaceMeta struct {
	Folder string `json:"folder"`
}

// ParseWorkspaceStore extracts chat-panel conversations from one
// workspaceStorage state database. The workspace id is the storage
// directory name; the sibling workspace.json supplies the folder hint.
func ParseWorkspaceStore(path string, diag *Diagnostics) ([]*Conversation, error) {
	db, err := OpenDatabase(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ok, err := TableExists(db, "ItemTable")
	if err != nil {
		return nil, &ArtifactError{Path: path, Op: "query", Err: err}
	}
	if !ok {
		LogDebug("No ItemTable in %s", path)
		return nil, nil
	}

	value, found, err := QueryKeyValue(db, "ItemTable", chatDataKey)
	if err != nil {
		return nil, &ArtifactError{Path: path, Op: "query", Err: err}
	}
	if !found || value == "" {
		return nil, nil
	}

	var data chatData
	if err := json.Unmarshal([]byte(value), &data); err != nil {
		return nil, &ArtifactError{Path: path, Op: "query", Err: fmt.Errorf("parse chat data: %w", err)}
	}

	workspaceID := filepath.Base(filepath.Dir(path))
	folder := workspaceFolder(filepath.Dir(path))

	var conversations []*Conversation
	for i, tab := range data.Tabs {
		conv := &Conversation{
			// Tabs have no durable key of their own when tabId is
			// absent; the workspace id plus ordinal is stable for a
			// given database.
			Key:             fmt.Sprintf("%s:%d", workspaceID, i),
			NativeID:        tab.TabID,
			Agent:           AgentCursor,
			Source:          SourceCursorCopilot,
			Title:           tab.ChatTitle,
			WorkspaceID:     workspaceID,
			WorkspaceFolder: folder,
		}
		if folder != "" {
			conv.PathHints = appendHint(conv.PathHints, folder)
		}

		for _, bubble := range tab.Bubbles {
			text := bubble.Text
			if text == "" {
				text = bubble.RawText
			}

			role := RoleAssistant
			if bubble.Type == "user" {
				role = RoleUser
			}

			var ts any
			if tab.LastSendTime > 0 {
				ts = tab.LastSendTime
			}

			conv.Records = append(conv.Records, RawRecord{
				Role:      role,
				Text:      text,
				Timestamp: ts,
			})
		}

		conversations = append(conversations, conv)
	}

	return conversations, nil
}

// workspaceFolder reads the folder URI out of workspace.json, returning
// the filesystem path or "" when there is nothing usable.
func workspaceFolder(storageDir string) string {
	data, err := os.ReadFile(filepath.Join(storageDir, "workspace.json"))
	if err != nil {
		return ""
	}
	var meta workspaceMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		LogDebug("Malformed workspace.json in %s: %v", storageDir, err)
		return ""
	}
	if meta.Folder == "" {
		return ""
	}
	if u, err := url.Parse(meta.Folder); err == nil && u.Scheme == "file" {
		return u.Path
	}
	return meta.Folder
}
