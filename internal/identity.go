package internal

import (
	"crypto/sha256"
	"strings"

	"github.com/google/uuid"
)

// SessionID returns the stable identifier for a conversation. A native
// UUID-like key is used verbatim; otherwise the id is derived
// deterministically from the source key so repeated extraction runs
// produce the same id for idempotent upserts.
func SessionID(conv *Conversation) string {
	if conv.NativeID != "" {
		if _, err := uuid.Parse(conv.NativeID); err == nil {
			return conv.NativeID
		}
		return DeriveID(conv.NativeID)
	}
	return DeriveID(string(conv.Source), conv.Key)
}

// DeriveID hashes the given stable parts into a UUID-v4-shaped string.
// The digest fills the id; only the version and variant nibbles are fixed.
func DeriveID(parts ...string) string {
	h := sha256.Sum256([]byte(strings.Join(parts, "\x00")))

	var id uuid.UUID
	copy(id[:], h[:16])
	id[6] = (id[6] & 0x0f) | 0x40 // version 4
	id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant
	return id.String()
}
