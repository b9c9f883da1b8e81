package scaffold

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ddddddO/gtree"
)

// Summary accumulates every outcome of a generation run for the final
// operator report. It never drives control flow; the filesystem state
// itself is the authority on what exists.
type Summary struct {
	DirsCreated    []string
	FilesCreated   []string
	FilesSkipped   []string
	PatchesApplied []string
	PatchesSkipped []string
	PatchesFailed  []string
}

func (r *Summary) RecordArtifact(artifact *Artifact) {
	switch {
	case artifact.AlreadyExisted:
		r.FilesSkipped = append(r.FilesSkipped, artifact.Path)
	case artifact.Dir:
		r.DirsCreated = append(r.DirsCreated, artifact.Path)
	default:
		r.FilesCreated = append(r.FilesCreated, artifact.Path)
	}
}

func (r *Summary) RecordPatch(name string, outcome PatchOutcome) {
	entry := fmt.Sprintf("%s (%s)", name, outcome)
	switch outcome {
	case PatchApplied:
		r.PatchesApplied = append(r.PatchesApplied, entry)
	case PatchAlreadyPresent:
		r.PatchesSkipped = append(r.PatchesSkipped, entry)
	default:
		r.PatchesFailed = append(r.PatchesFailed, entry)
	}
}

// Print writes the aggregate counts and a tree of newly created paths.
func (r *Summary) Print(w io.Writer) error {
	fmt.Fprintf(w, "\ndirectories created: %d\n", len(r.DirsCreated))
	fmt.Fprintf(w, "files created:       %d\n", len(r.FilesCreated))
	fmt.Fprintf(w, "files skipped:       %d\n", len(r.FilesSkipped))
	fmt.Fprintf(w, "patches applied:     %d\n", len(r.PatchesApplied))
	fmt.Fprintf(w, "patches skipped:     %d\n", len(r.PatchesSkipped))
	fmt.Fprintf(w, "patches failed:      %d\n", len(r.PatchesFailed))

	if len(r.FilesCreated) == 0 {
		return nil
	}

	// * render the created files as a tree rooted at the project
	fmt.Fprintln(w)
	root := gtree.NewRoot(".")
	nodes := map[string]*gtree.Node{}
	for _, path := range r.FilesCreated {
		parent := root
		prefix := ""
		for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
			if segment == "" || segment == "." {
				continue
			}
			prefix += "/" + segment
			node, ok := nodes[prefix]
			if !ok {
				node = parent.Add(segment)
				nodes[prefix] = node
			}
			parent = node
		}
	}

	return gtree.OutputProgrammably(w, root)
}
