package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rahmatsyaparudin/modforge/utility/form"
)

// fixturePhrases are applied before the standard substitutions, while
// the template token is still present. Display strings become the
// module's human-readable name, and the template's domain-specific
// faker provider is downgraded to a built-in one that exists for any
// module.
var fixturePhrases = [][2]string{
	{"Example record", "{display} record"},
	{"$faker->exampleName", "$faker->word"},
}

// GenerateFixture writes the module's fixture data file at its
// lowercase-named path.
func GenerateFixture(root string, config *Config, rewriter *Rewriter) (*Artifact, error) {
	names := rewriter.Names
	fixtureDir := filepath.Join(root, config.Output.Fixture)
	target := filepath.Join(fixtureDir, names.Lower+".php")

	if _, err := os.Stat(target); err == nil {
		return &Artifact{Path: target, AlreadyExisted: true}, nil
	}

	templatePath := filepath.Join(root, config.Template.Fixture)
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, templatePath)
		}
		return nil, fmt.Errorf("failed to read fixture template: %w", err)
	}

	display := form.ToDisplayName(names.Pascal)
	text := string(content)
	for _, phrase := range fixturePhrases {
		replacement := strings.ReplaceAll(phrase[1], "{display}", display)
		text = strings.ReplaceAll(text, phrase[0], replacement)
	}

	text = string(rewriter.Rewrite([]byte(text)))

	if err := os.MkdirAll(fixtureDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create fixture directory: %w", err)
	}

	if err := os.WriteFile(target, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("failed to write fixture %s: %w", target, err)
	}

	return &Artifact{Path: target}, nil
}
