package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// migrationTemplatePrefix is the zeroed timestamp carried by the
// template migration's class name. Generation swaps it for a fresh one.
const migrationTemplatePrefix = "M000000000000"

const migrationTimestampLayout = "060102150405"

// GenerateMigration writes a timestamped create-table migration for the
// module. The class name embeds the same timestamp as the file name:
// the migration runner reads both as load-bearing metadata, so they
// must match exactly.
func GenerateMigration(root string, config *Config, rewriter *Rewriter) (*Artifact, error) {
	names := rewriter.Names
	migrationDir := filepath.Join(root, config.Output.Migration)

	// * repeated runs must not produce competing migrations for the same
	// * module, so any existing create-table migration for it wins
	pattern := regexp.MustCompile(`^M\d{12}Create` + regexp.QuoteMeta(names.Pascal) + `Table\.php$`)
	entries, err := os.ReadDir(migrationDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read migration directory %s: %w", migrationDir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && pattern.MatchString(entry.Name()) {
			return &Artifact{Path: filepath.Join(migrationDir, entry.Name()), AlreadyExisted: true}, nil
		}
	}

	templatePath := filepath.Join(root, config.Template.Migration)
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, templatePath)
		}
		return nil, fmt.Errorf("failed to read migration template: %w", err)
	}

	// * second-granularity timestamp; combined with the module name it
	// * cannot collide across modules generated in the same second
	timestamp := time.Now().Format(migrationTimestampLayout)
	text := strings.ReplaceAll(string(content), migrationTemplatePrefix, "M"+timestamp)
	text = string(rewriter.Rewrite([]byte(text)))

	if err := os.MkdirAll(migrationDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create migration directory: %w", err)
	}

	target := filepath.Join(migrationDir, "M"+timestamp+"Create"+names.Pascal+"Table.php")
	if err := os.WriteFile(target, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("failed to write migration %s: %w", target, err)
	}

	return &Artifact{Path: target}, nil
}
