package internal

import "fmt"

// ArtifactError represents errors reading one on-disk artifact. Artifacts
// that fail are skipped and counted; they never abort a batch.
type ArtifactError struct {
	Path string
	Op   string // "open", "read", "query"
	Err  error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("artifact error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// RecordError represents a single malformed record inside an otherwise
// parseable artifact.
type RecordError struct {
	Source Source
	Key    string // storage key or file:line
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export.
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// SyncError represents a failed remote upsert after retries.
type SyncError struct {
	Kind string // "session" or "project"
	ID   string
	Err  error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync error [%s] %s: %v", e.Kind, e.ID, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
