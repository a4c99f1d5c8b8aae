package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/sessionsync/internal"
)

// MarkdownExporter exports sessions in Markdown format
type MarkdownExporter struct{}

// Export exports a session to Markdown format
func (e *MarkdownExporter) Export(session *internal.Session, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Session %s\n\n", session.ID)

	_, _ = fmt.Fprintf(w, "**Agent:** %s  \n", session.AgentType)
	_, _ = fmt.Fprintf(w, "**Source:** %s  \n", session.Metadata.Source)
	if session.Metadata.ProjectName != "" {
		_, _ = fmt.Fprintf(w, "**Project:** %s  \n", session.Metadata.ProjectName)
	}
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(session.Messages))

	if session.Metadata.ConversationName != "" {
		_, _ = fmt.Fprintf(w, "**Name:** %s\n\n", session.Metadata.ConversationName)
	}
	if session.Metadata.Summary != "" {
		_, _ = fmt.Fprintf(w, "> %s\n\n", session.Metadata.Summary)
	}

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, _ = fmt.Fprintf(w, "## Messages\n\n")

	for i, msg := range session.Messages {
		timestamp := ""
		if msg.TimestampIso != "" {
			timestamp = fmt.Sprintf(" (%s)", msg.TimestampIso)
		}

		content := escapeMarkdown(msg.DisplayText)

		_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", msg.Role, timestamp, content)

		if i < len(session.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// escapeMarkdown escapes markdown special characters outside code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result []string
	inCodeBlock := false

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			inCodeBlock = !inCodeBlock
			result = append(result, line)
		} else if inCodeBlock {
			result = append(result, line)
		} else {
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
