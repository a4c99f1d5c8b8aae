package internal

// Diagnostics counts the recoverable failures of one extraction run.
// Nothing in the pipeline aborts a batch; every failure class degrades to
// skip-and-count, and the counts travel with the result.
type Diagnostics struct {
	ArtifactsScanned int `json:"artifacts_scanned"`
	ArtifactsSkipped int `json:"artifacts_skipped"`
	RecordsSkipped   int `json:"records_skipped"`
	EmptySessions    int `json:"empty_sessions"`
	Sessions         int `json:"sessions"`
}
