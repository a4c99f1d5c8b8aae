package internal

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// projectRootSegments are the conventional directory names users keep
// source trees under. The segment after one of these is taken as the
// project name. Known heuristic limitation: other home layouts will fall
// through to the basename fallbacks.
var projectRootSegments = map[string]bool{
	"projects":  true,
	"code":      true,
	"dev":       true,
	"src":       true,
	"repos":     true,
	"workspace": true,
	"go":        true,
}

// maxCanonicalSegments bounds how many trailing path segments survive
// canonicalization.
const maxCanonicalSegments = 4

// UncategorizedProject is the bucket for sessions with no inferable path.
const UncategorizedProject = "Uncategorized"

// InferProject derives a human-meaningful (name, path) from candidate
// absolute paths and an optional explicit workspace folder. The first
// candidate containing a known projects-root segment wins; candidates are
// never aggregated. Both results empty is a valid outcome.
func InferProject(candidates []string, workspaceFolder string) (name, path string) {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if n, p, ok := matchRootSegment(candidate); ok {
			return n, p
		}
	}

	// No candidate matched a projects root.
	for _, candidate := range candidates {
		segs := splitPath(candidate)
		if len(segs) >= 2 {
			return segs[len(segs)-2] + "/" + segs[len(segs)-1], candidate
		}
	}

	if workspaceFolder != "" {
		return filepath.Base(filepath.FromSlash(workspaceFolder)), workspaceFolder
	}

	return "", ""
}

func matchRootSegment(path string) (string, string, bool) {
	segs := splitPath(path)
	for i := 0; i < len(segs)-1; i++ {
		if projectRootSegments[strings.ToLower(segs[i])] {
			name := segs[i+1]
			prefix := strings.Join(segs[:i+2], "/")
			if strings.HasPrefix(filepath.ToSlash(path), "/") {
				prefix = "/" + prefix
			}
			return name, prefix, true
		}
	}
	return "", "", false
}

func splitPath(path string) []string {
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
	var segs []string
	for _, s := range strings.Split(clean, "/") {
		if s != "" && s != "." {
			segs = append(segs, s)
		}
	}
	return segs
}

// CanonicalPath normalizes a filesystem path into the stable merge key
// used by the project aggregator: home-directory prefix stripped, slashes
// unified, collapsed to a bounded number of trailing segments.
func CanonicalPath(path string) string {
	if path == "" {
		return ""
	}
	p := filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		h := filepath.ToSlash(home)
		if p == h {
			return "~"
		}
		if strings.HasPrefix(p, h+"/") {
			p = "~/" + p[len(h)+1:]
		}
	}
	segs := strings.Split(strings.TrimPrefix(p, "/"), "/")
	if len(segs) > maxCanonicalSegments {
		segs = segs[len(segs)-maxCanonicalSegments:]
		return strings.Join(segs, "/")
	}
	return p
}

// ProjectInfo aggregates session activity per canonical project path.
type ProjectInfo struct {
	Name            string         `json:"name"`
	Path            string         `json:"path"`
	WorkspaceIDs    []string       `json:"workspace_ids,omitempty"`
	SessionCounts   map[Source]int `json:"session_counts"`
	LastActivityIso string         `json:"last_activity"`
}

// ProjectAggregator merges per-session project contributions keyed by
// canonical path. It is rebuilt from scratch each run; counts are never
// carried over, which keeps re-runs from double-counting.
type ProjectAggregator struct {
	projects map[string]*ProjectInfo
}

// NewProjectAggregator creates an empty aggregator.
func NewProjectAggregator() *ProjectAggregator {
	return &ProjectAggregator{projects: make(map[string]*ProjectInfo)}
}

// AddSession folds one session into the aggregate. Sessions without a
// project path land in the Uncategorized bucket.
func (a *ProjectAggregator) AddSession(s *Session) {
	path := s.Metadata.ProjectPath
	name := s.Metadata.ProjectName
	if path == "" {
		name = UncategorizedProject
	}
	a.Merge(&ProjectInfo{
		Name:            name,
		Path:            path,
		WorkspaceIDs:    workspaceIDs(s),
		SessionCounts:   map[Source]int{s.Metadata.Source: 1},
		LastActivityIso: s.TimestampIso,
	})
}

// Merge folds one partial ProjectInfo into the aggregate: union of
// workspace ids, per-source count summation, maximum last activity.
func (a *ProjectAggregator) Merge(info *ProjectInfo) {
	existing, ok := a.projects[info.Path]
	if !ok {
		existing = &ProjectInfo{
			Name:          info.Name,
			Path:          info.Path,
			SessionCounts: make(map[Source]int),
		}
		a.projects[info.Path] = existing
	}
	if existing.Name == "" {
		existing.Name = info.Name
	}
	for _, id := range info.WorkspaceIDs {
		if id != "" && !contains(existing.WorkspaceIDs, id) {
			existing.WorkspaceIDs = append(existing.WorkspaceIDs, id)
		}
	}
	for source, n := range info.SessionCounts {
		existing.SessionCounts[source] += n
	}
	existing.LastActivityIso = LaterIso(existing.LastActivityIso, info.LastActivityIso)
}

// Projects returns the merged records ordered by path, workspace ids
// sorted for stable output.
func (a *ProjectAggregator) Projects() []*ProjectInfo {
	out := make([]*ProjectInfo, 0, len(a.projects))
	for _, p := range a.projects {
		sort.Strings(p.WorkspaceIDs)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func workspaceIDs(s *Session) []string {
	if s.Metadata.WorkspaceID == "" {
		return nil
	}
	return []string{s.Metadata.WorkspaceID}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
