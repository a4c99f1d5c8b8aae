package internal

import "time"

// Result is one extraction run's output: the normalized sessions, the
// aggregated project view, and the diagnostic counts.
type Result struct {
	Sessions    []*Session
	Projects    []*ProjectInfo
	Diagnostics Diagnostics
}

// Pipeline runs the whole extraction: scan artifacts, parse each one,
// assemble sessions, aggregate projects. Each run is a pure function of
// the on-disk inputs; no state is carried between runs.
type Pipeline struct {
	Paths StoragePaths

	// Cutoff pre-filters artifacts by modification time; zero means no
	// filtering.
	Cutoff time.Time
}

// Run executes one full extraction pass. It never fails for partial-data
// conditions: unreadable artifacts and malformed records are skipped and
// counted, and missing roots yield an empty result.
func (p *Pipeline) Run() *Result {
	result := &Result{}
	diag := &result.Diagnostics

	artifacts := ScanArtifacts(p.Paths, p.Cutoff)
	diag.ArtifactsScanned = len(artifacts)

	for _, artifact := range artifacts {
		conversations, err := parseArtifact(artifact, diag)
		if err != nil {
			LogWarn("Skipping artifact %s: %v", artifact.Path, err)
			diag.ArtifactsSkipped++
			continue
		}
		for _, conv := range conversations {
			if session := AssembleSession(conv, diag); session != nil {
				result.Sessions = append(result.Sessions, session)
			}
		}
	}

	aggregator := NewProjectAggregator()
	for _, session := range result.Sessions {
		aggregator.AddSession(session)
	}
	result.Projects = aggregator.Projects()

	LogInfo("Extraction complete: %d sessions, %d projects (%d artifacts skipped, %d records skipped, %d empty)",
		len(result.Sessions), len(result.Projects),
		diag.ArtifactsSkipped, diag.RecordsSkipped, diag.EmptySessions)

	return result
}

func parseArtifact(artifact Artifact, diag *Diagnostics) ([]*Conversation, error) {
	switch artifact.Source {
	case SourceClaudeCode:
		conv, err := ParseClaudeLog(artifact.Path, diag)
		if err != nil {
			return nil, err
		}
		return []*Conversation{conv}, nil
	case SourceCursorComposer:
		return ParseComposerStore(artifact.Path, diag)
	case SourceCursorCopilot:
		return ParseWorkspaceStore(artifact.Path, diag)
	default:
		return nil, nil
	}
}
