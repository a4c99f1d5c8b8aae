package internal

import (
	"encoding/json"
	"strings"
)

// contentPart is one element of a typed content-part array. Only textual
// parts contribute to display text; tool calls, attachments and the like
// are skipped.
type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ExtractContent reduces an opaque content value to plain display text.
// The value is either a plain JSON string or an ordered array of typed
// parts; anything else yields an empty string, which the caller treats as
// a dropped record.
func ExtractContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var parts []contentPart
	if err := json.Unmarshal(raw, &parts); err == nil {
		var texts []string
		for _, p := range parts {
			if p.Type == "text" && p.Text != "" {
				texts = append(texts, p.Text)
			}
		}
		return strings.TrimSpace(strings.Join(texts, "\n"))
	}

	return ""
}
