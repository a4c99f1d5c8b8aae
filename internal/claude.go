package internal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
)

// maxLineSize bounds a single JSONL line; assistant turns with large tool
// output can run to megabytes.
const maxLineSize = 10 * 1024 * 1024

// claudeRecord is one line of a Claude Code session log.
type claudeRecord struct {
	Type      string          `json:"type"`
	IsMeta    bool            `json:"isMeta"`
	Timestamp string          `json:"timestamp"`
	Cwd       string          `json:"cwd"`
	SessionID string          `json:"sessionId"`
	Message   json.RawMessage `json:"message"`
	Summary   string          `json:"summary"` // for type="summary" records
}

type claudeMessage struct {
	Role           string                     `json:"role"`
	Content        json.RawMessage            `json:"content"`
	PastedContents map[string]json.RawMessage `json:"pastedContents"`
}

// ParseClaudeLog parses one Claude Code JSONL session log into a single
// conversation group. Malformed lines are skipped individually and
// counted; only a file that cannot be opened at all fails the artifact.
func ParseClaudeLog(path string, diag *Diagnostics) (*Conversation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ArtifactError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	conv := &Conversation{
		Key:    strings.TrimSuffix(filepath.Base(path), ".jsonl"),
		Agent:  AgentClaudeCode,
		Source: SourceClaudeCode,
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec claudeRecord
		if err := sonic.Unmarshal(line, &rec); err != nil {
			LogDebug("Skipping malformed line: %v", &RecordError{
				Source: SourceClaudeCode,
				Key:    fmt.Sprintf("%s:%d", path, lineNum),
				Err:    err,
			})
			diag.RecordsSkipped++
			continue
		}

		// In-stream session id overrides the filename key; last seen wins.
		if rec.SessionID != "" {
			conv.Key = rec.SessionID
			conv.NativeID = rec.SessionID
		}

		if rec.Cwd != "" {
			conv.PathHints = appendHint(conv.PathHints, rec.Cwd)
		}

		// Synthetic summary records carry the title; last one wins.
		if rec.Type == "summary" && rec.Summary != "" {
			conv.Summary = rec.Summary
			continue
		}

		if rec.IsMeta {
			continue
		}
		if rec.Type != "user" && rec.Type != "assistant" {
			continue
		}

		var msg claudeMessage
		if err := sonic.Unmarshal(rec.Message, &msg); err != nil {
			LogDebug("Skipping line with malformed message: %v", &RecordError{
				Source: SourceClaudeCode,
				Key:    fmt.Sprintf("%s:%d", path, lineNum),
				Err:    err,
			})
			diag.RecordsSkipped++
			continue
		}

		role := RoleAssistant
		if rec.Type == "user" {
			role = RoleUser
		}

		conv.Records = append(conv.Records, RawRecord{
			Role:      role,
			Content:   msg.Content,
			Timestamp: rec.Timestamp,
			Pasted:    msg.PastedContents,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, &ArtifactError{Path: path, Op: "read", Err: fmt.Errorf("scan: %w", err)}
	}

	return conv, nil
}

func appendHint(hints []string, hint string) []string {
	for _, h := range hints {
		if h == hint {
			return hints
		}
	}
	return append(hints, hint)
}
