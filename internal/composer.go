package internal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// rawComposer is the composerData payload from the cursorDiskKV store.
// Two storage layouts exist: older databases inline the full bubble array
// under "conversation"; newer ones store only headers and keep each bubble
// under its own bubbleId key.
type rawComposer struct {
	ComposerID                  string               `json:"composerId"`
	Name                        string               `json:"name,omitempty"`
	Conversation                []rawBubble          `json:"conversation,omitempty"`
	FullConversationHeadersOnly []conversationHeader `json:"fullConversationHeadersOnly,omitempty"`
	CreatedAt                   int64                `json:"createdAt,omitempty"`
	LastUpdatedAt               int64                `json:"lastUpdatedAt,omitempty"`
	Context                     composerContext      `json:"context,omitempty"`
}

type conversationHeader struct {
	BubbleID string `json:"bubbleId"`
	Type     int    `json:"type"`
}

// rawBubble is one message bubble. Type code 1 is the user; everything
// else is the assistant.
type rawBubble struct {
	BubbleID      string   `json:"bubbleId"`
	Type          int      `json:"type"`
	Text          string   `json:"text,omitempty"`
	RichText      string   `json:"richText,omitempty"`
	Timestamp     int64    `json:"timestamp,omitempty"` // ms epoch
	RelevantFiles []string `json:"relevantFiles,omitempty"`
}

type composerContext struct {
	FileSelections []fileSelection `json:"fileSelections,omitempty"`
}

type fileSelection struct {
	URI struct {
		FsPath string `json:"fsPath"`
	} `json:"uri"`
}

// composerLayout is the storage-layout variant of one composer record,
// probed once per record and never mixed.
type composerLayout int

const (
	layoutInline  composerLayout = iota // variant A: conversation array inline
	layoutHeaders                       // variant B: headers + per-bubble keys
)

func (c *rawComposer) layout() composerLayout {
	if len(c.Conversation) > 0 {
		return layoutInline
	}
	return layoutHeaders
}

// ParseComposerStore extracts all composer conversations from a
// globalStorage state database. A missing cursorDiskKV table yields an
// empty result; malformed rows are skipped individually.
func ParseComposerStore(path string, diag *Diagnostics) ([]*Conversation, error) {
	db, err := OpenDatabase(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ok, err := TableExists(db, "cursorDiskKV")
	if err != nil {
		return nil, &ArtifactError{Path: path, Op: "query", Err: err}
	}
	if !ok {
		LogDebug("No cursorDiskKV table in %s", path)
		return nil, nil
	}

	pairs, err := QueryKeyValues(db, "cursorDiskKV", "composerData:%")
	if err != nil {
		return nil, &ArtifactError{Path: path, Op: "query", Err: err}
	}

	var conversations []*Conversation
	for _, pair := range pairs {
		composer, err := parseComposerValue(pair.Key, pair.Value)
		if err != nil {
			LogDebug("Skipping composer row: %v", &RecordError{
				Source: SourceCursorComposer,
				Key:    pair.Key,
				Err:    err,
			})
			diag.RecordsSkipped++
			continue
		}

		conv := composerConversation(db, composer, diag)
		conversations = append(conversations, conv)
	}

	return conversations, nil
}

func parseComposerValue(key, value string) (*rawComposer, error) {
	id := strings.TrimPrefix(key, "composerData:")
	if id == key || id == "" {
		return nil, fmt.Errorf("invalid composerData key format: %s", key)
	}

	var composer rawComposer
	if err := json.Unmarshal([]byte(value), &composer); err != nil {
		return nil, fmt.Errorf("failed to parse composer JSON: %w", err)
	}
	composer.ComposerID = id
	return &composer, nil
}

func composerConversation(db *sql.DB, composer *rawComposer, diag *Diagnostics) *Conversation {
	conv := &Conversation{
		Key:      composer.ComposerID,
		NativeID: composer.ComposerID,
		Agent:    AgentCursor,
		Source:   SourceCursorComposer,
		Title:    composer.Name,
	}

	for _, sel := range composer.Context.FileSelections {
		if sel.URI.FsPath != "" {
			conv.PathHints = appendHint(conv.PathHints, sel.URI.FsPath)
		}
	}

	var bubbles []rawBubble
	switch composer.layout() {
	case layoutInline:
		bubbles = composer.Conversation
	case layoutHeaders:
		bubbles = loadHeaderBubbles(db, composer, diag)
	}

	// Chronological order; stable so header order survives missing or
	// equal timestamps.
	sort.SliceStable(bubbles, func(i, j int) bool {
		return bubbles[i].Timestamp < bubbles[j].Timestamp
	})

	for _, bubble := range bubbles {
		conv.Records = append(conv.Records, bubbleRecord(bubble, composer))
		for _, f := range bubble.RelevantFiles {
			conv.PathHints = appendHint(conv.PathHints, f)
		}
	}

	return conv
}

// loadHeaderBubbles resolves variant-B conversations: each header points
// at a bubbleId:<composerId>:<bubbleId> row. Headers whose bubble row is
// missing or malformed are skipped.
func loadHeaderBubbles(db *sql.DB, composer *rawComposer, diag *Diagnostics) []rawBubble {
	pairs, err := QueryKeyValues(db, "cursorDiskKV", "bubbleId:"+composer.ComposerID+":%")
	if err != nil {
		LogWarn("Failed to load bubbles for composer %s: %v", composer.ComposerID, err)
		return nil
	}

	byID := make(map[string]rawBubble, len(pairs))
	for _, pair := range pairs {
		parts := strings.Split(pair.Key, ":")
		if len(parts) != 3 {
			diag.RecordsSkipped++
			continue
		}
		var bubble rawBubble
		if err := json.Unmarshal([]byte(pair.Value), &bubble); err != nil {
			LogDebug("Skipping malformed bubble: %v", &RecordError{
				Source: SourceCursorComposer,
				Key:    pair.Key,
				Err:    err,
			})
			diag.RecordsSkipped++
			continue
		}
		bubble.BubbleID = parts[2]
		byID[bubble.BubbleID] = bubble
	}

	var bubbles []rawBubble
	for _, header := range composer.FullConversationHeadersOnly {
		bubble, ok := byID[header.BubbleID]
		if !ok {
			LogDebug("Bubble %s referenced by composer %s not found", header.BubbleID, composer.ComposerID)
			continue
		}
		if bubble.Type == 0 {
			bubble.Type = header.Type
		}
		bubbles = append(bubbles, bubble)
	}
	return bubbles
}

func bubbleRecord(bubble rawBubble, composer *rawComposer) RawRecord {
	text := bubble.Text
	if text == "" && bubble.RichText != "" {
		text = ExtractRichText(bubble.RichText)
	}

	var ts any
	switch {
	case bubble.Timestamp > 0:
		ts = bubble.Timestamp
	case composer.LastUpdatedAt > 0:
		ts = composer.LastUpdatedAt
	case composer.CreatedAt > 0:
		ts = composer.CreatedAt
	}

	return RawRecord{
		Role:      MapTypeCode(bubble.Type),
		Text:      text,
		Timestamp: ts,
	}
}
