package internal

import "strings"

// AssembleSession composes a parser's conversation group into a canonical
// Session. Records whose content reduces to nothing are dropped; a
// conversation with no surviving messages yields nil and bumps the
// empty-session counter.
func AssembleSession(conv *Conversation, diag *Diagnostics) *Session {
	if conv == nil {
		return nil
	}

	messages := make([]Message, 0, len(conv.Records))
	for _, rec := range conv.Records {
		text := rec.Text
		if text == "" {
			text = ExtractContent(rec.Content)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			diag.RecordsSkipped++
			continue
		}

		role := "assistant"
		if rec.Role == RoleUser {
			role = "user"
		}

		messages = append(messages, Message{
			DisplayText:    text,
			Role:           role,
			TimestampIso:   NormalizeTime(rec.Timestamp),
			PastedContents: rec.Pasted,
		})
	}

	if len(messages) == 0 {
		diag.EmptySessions++
		LogDebug("Dropping empty conversation %s (%s)", conv.Key, conv.Source)
		return nil
	}

	// Latest message timestamp wins for the session.
	sessionTs := messages[0].TimestampIso
	for _, m := range messages[1:] {
		sessionTs = LaterIso(sessionTs, m.TimestampIso)
	}

	name, path := InferProject(conv.PathHints, conv.WorkspaceFolder)

	session := &Session{
		ID:           SessionID(conv),
		TimestampIso: sessionTs,
		Messages:     messages,
		AgentType:    conv.Agent,
		Metadata: Metadata{
			ProjectPath:      CanonicalPath(path),
			ProjectName:      name,
			ConversationName: conv.Title,
			WorkspaceID:      conv.WorkspaceID,
			Source:           conv.Source,
			Summary:          conv.Summary,
		},
	}
	diag.Sessions++
	return session
}
