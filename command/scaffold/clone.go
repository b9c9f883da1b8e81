package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrSourceMissing = errors.New("template directory not found")

// Artifact records one filesystem output of a generation run. Existing
// targets are never overwritten; they are reported with AlreadyExisted
// set so a re-run can be audited against the first one.
type Artifact struct {
	Path           string
	Dir            bool
	AlreadyExisted bool
}

// CloneTree walks a template directory depth-first, creating the
// renamed target directories and writing a rewritten copy of every file
// that does not already exist at its target path.
func CloneTree(sourceDir string, targetPattern string, rewriter *Rewriter) ([]*Artifact, error) {
	// * a missing template layer is recoverable at the mapping level
	if _, err := os.Stat(sourceDir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, sourceDir)
		}
		return nil, fmt.Errorf("failed to stat template directory %s: %w", sourceDir, err)
	}

	targetRoot := rewriter.RewritePath(targetPattern)

	var artifacts []*Artifact
	walkErr := filepath.WalkDir(sourceDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		target := targetRoot
		if rel != "." {
			target = filepath.Join(targetRoot, rewriter.RewritePath(rel))
		}

		if entry.IsDir() {
			// * directories are created before their files are visited
			if _, err := os.Stat(target); err == nil {
				return nil
			}
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			artifacts = append(artifacts, &Artifact{Path: target, Dir: true})
			return nil
		}

		// * never clobber a file generated by a previous run
		if _, err := os.Stat(target); err == nil {
			artifacts = append(artifacts, &Artifact{Path: target, AlreadyExisted: true})
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		if err := os.WriteFile(target, rewriter.Rewrite(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		artifacts = append(artifacts, &Artifact{Path: target})
		return nil
	})
	if walkErr != nil {
		return artifacts, walkErr
	}

	return artifacts, nil
}
