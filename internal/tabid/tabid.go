// Package tabid encodes a tab's semantic identity into a stable string id
// and derives display labels from it. The encoding is deterministic and
// reversible so tab ids can double as deduplication keys.
package tabid

import (
	"path"
	"strings"

	"github.com/PostHog/Twig-sub005/internal/paneltree"
)

const (
	filePrefix = "file-"
	diffPrefix = "diff-"

	// WorkspaceTerminalPrefix prefixes the deterministic ids of
	// workspace-scoped terminal tabs.
	WorkspaceTerminalPrefix = "workspace-terminal-"
)

// Kind classifies a parsed tab id.
type Kind string

const (
	KindFile   Kind = "file"
	KindDiff   Kind = "diff"
	KindSystem Kind = "system"
)

// Ref is the decoded form of a tab id.
type Ref struct {
	Kind   Kind
	Value  string
	Status paneltree.DiffStatus
}

// File builds the id of a file tab.
func File(filePath string) string {
	return filePrefix + filePath
}

// Diff builds the id of a diff tab; status may be empty.
func Diff(filePath string, status paneltree.DiffStatus) string {
	if status == "" {
		return diffPrefix + filePath
	}
	return diffPrefix + string(status) + ":" + filePath
}

// WorkspaceTerminal builds the deterministic id of a workspace terminal tab.
func WorkspaceTerminal(sessionID string) string {
	return WorkspaceTerminalPrefix + sessionID
}

// Parse decodes a tab id. Ids outside the file-/diff- encodings are system
// tabs carrying the literal id as their value.
func Parse(id string) Ref {
	switch {
	case strings.HasPrefix(id, filePrefix):
		return Ref{Kind: KindFile, Value: strings.TrimPrefix(id, filePrefix)}
	case strings.HasPrefix(id, diffPrefix):
		rest := strings.TrimPrefix(id, diffPrefix)
		if status, value, ok := strings.Cut(rest, ":"); ok && knownStatus(paneltree.DiffStatus(status)) {
			return Ref{Kind: KindDiff, Value: value, Status: paneltree.DiffStatus(status)}
		}
		return Ref{Kind: KindDiff, Value: rest}
	default:
		return Ref{Kind: KindSystem, Value: id}
	}
}

// Label derives the display label for a tab id: basename for files,
// "basename (Status)" for diffs, the literal value for system tabs.
func Label(id string) string {
	ref := Parse(id)
	switch ref.Kind {
	case KindFile:
		return path.Base(ref.Value)
	case KindDiff:
		return path.Base(ref.Value) + " (" + StatusLabel(ref.Status) + ")"
	default:
		return ref.Value
	}
}

// StatusLabel maps a diff status to its short display form.
func StatusLabel(status paneltree.DiffStatus) string {
	switch status {
	case paneltree.DiffDeleted:
		return "Deleted"
	case paneltree.DiffAdded, paneltree.DiffUntracked:
		return "New"
	case paneltree.DiffRenamed:
		return "Renamed"
	default:
		return "diff"
	}
}

func knownStatus(status paneltree.DiffStatus) bool {
	switch status {
	case paneltree.DiffModified, paneltree.DiffAdded, paneltree.DiffDeleted,
		paneltree.DiffRenamed, paneltree.DiffUntracked:
		return true
	}
	return false
}
