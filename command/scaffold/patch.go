package scaffold

import (
	"fmt"
	"os"
	"strings"
)

type PatchOutcome int

// PatchFailed is the zero value so an errored patch never reads as a
// meaningful outcome; PatchAnchorNotFound is reserved for the case
// where the file was read but no anchor matched.
const (
	PatchFailed PatchOutcome = iota
	PatchApplied
	PatchAlreadyPresent
	PatchAnchorNotFound
)

func (r PatchOutcome) String() string {
	switch r {
	case PatchApplied:
		return "applied"
	case PatchAlreadyPresent:
		return "already present"
	case PatchAnchorNotFound:
		return "anchor not found"
	default:
		return "failed"
	}
}

// Anchor is one candidate insertion point inside a shared file. Find is
// matched as a literal substring; the fragment lands on the line after
// the match, or on the line before it when Before is set (the trailing
// closing-bracket fallback).
type Anchor struct {
	Find   string
	Before bool
}

// ApplyPatch inserts fragment into the file at path unless marker is
// already present. Anchors are tried in order, first match wins. When
// none match the file is left untouched and the failure is reported to
// the caller instead of guessing an insertion point; these files are
// hand-maintained and must stay valid after every edit.
func ApplyPatch(path string, marker string, fragment string, anchors []Anchor) (PatchOutcome, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return PatchFailed, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return PatchFailed, fmt.Errorf("failed to read shared file %s: %w", path, err)
	}

	// * the marker doubles as the idempotency record; its presence means
	// * an earlier run already applied this patch
	text := string(content)
	if strings.Contains(text, marker) {
		return PatchAlreadyPresent, nil
	}

	for _, anchor := range anchors {
		// * Before anchors describe the file's trailing closing construct,
		// * so the last occurrence is the one that counts
		var idx int
		if anchor.Before {
			idx = strings.LastIndex(text, anchor.Find)
		} else {
			idx = strings.Index(text, anchor.Find)
		}
		if idx == -1 {
			continue
		}

		// * insertion is line-granular so the anchor line itself stays
		// * intact either side of the fragment
		var insert int
		if anchor.Before {
			insert = strings.LastIndex(text[:idx], "\n") + 1
		} else {
			lineEnd := strings.IndexByte(text[idx:], '\n')
			if lineEnd == -1 {
				insert = len(text)
				fragment = "\n" + fragment
			} else {
				insert = idx + lineEnd + 1
			}
		}

		patched := text[:insert] + fragment + text[insert:]
		if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
			return PatchFailed, fmt.Errorf("failed to write shared file %s: %w", path, err)
		}
		return PatchApplied, nil
	}

	return PatchAnchorNotFound, nil
}
