package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/sessionsync/internal"
)

// JSONLExporter exports sessions in JSONL format (one message per line)
type JSONLExporter struct{}

// Export exports a session to JSONL format
func (e *JSONLExporter) Export(session *internal.Session, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range session.Messages {
		obj := map[string]interface{}{
			"session_id": session.ID,
			"role":       msg.Role,
			"text":       msg.DisplayText,
		}
		if msg.TimestampIso != "" {
			obj["timestamp"] = msg.TimestampIso
		}

		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
