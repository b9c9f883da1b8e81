package scaffold

import (
	"fmt"
	"os"

	"github.com/bsthun/gut"
	"gopkg.in/yaml.v3"
)

// Config locates every template input and shared file the generator
// touches. All paths are relative to the project root. The zero config
// file is valid; every key defaults to the boilerplate's fixed layout.
type Config struct {
	Template TemplateConfig `yaml:"template"`
	Output   OutputConfig   `yaml:"output"`
	Shared   SharedConfig   `yaml:"shared"`
	Mappings []Mapping      `yaml:"mappings" validate:"required,min=1"`
}

type TemplateConfig struct {
	Token     string `yaml:"token" validate:"required"`
	Migration string `yaml:"migration" validate:"required"`
	Seed      string `yaml:"seed" validate:"required"`
	Fixture   string `yaml:"fixture" validate:"required"`
}

type OutputConfig struct {
	Migration string `yaml:"migration" validate:"required"`
	Seed      string `yaml:"seed" validate:"required"`
	Fixture   string `yaml:"fixture" validate:"required"`
}

type SharedConfig struct {
	Repositories string `yaml:"repositories" validate:"required"`
	Permissions  string `yaml:"permissions" validate:"required"`
	Routes       string `yaml:"routes" validate:"required"`
}

// Mapping pairs one template layer directory with its target directory
// pattern. The pattern carries the template token literally; the cloner
// substitutes the module's capitalized form into it.
type Mapping struct {
	Source string `yaml:"source" validate:"required"`
	Target string `yaml:"target"`
}

func DefaultConfig() *Config {
	return &Config{
		Template: TemplateConfig{
			Token:     "Example",
			Migration: "templates/CreateExampleTable.php",
			Seed:      "templates/SeedExampleData.php",
			Fixture:   "templates/example.php",
		},
		Output: OutputConfig{
			Migration: "migrations",
			Seed:      "seeds",
			Fixture:   "fixtures/data",
		},
		Shared: SharedConfig{
			Repositories: "config/repositories.php",
			Permissions:  "config/permissions.php",
			Routes:       "config/routes.php",
		},
		Mappings: []Mapping{
			{Source: "src/Module/Example/Controller"},
			{Source: "src/Module/Example/Service"},
			{Source: "src/Module/Example/Entity"},
			{Source: "src/Module/Example/Repository"},
		},
	}
}

// LoadConfig reads modforge.yml when present, falling back to the
// default layout otherwise.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	// * read config; an absent file keeps the defaults
	yml, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("unable to read configuration file: %w", err)
	}

	if err == nil {
		// * parse config
		if err := yaml.Unmarshal(yml, config); err != nil {
			return nil, fmt.Errorf("unable to parse configuration file: %w", err)
		}

		// * validate config
		if err := gut.Validate(config); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	// * the validator only recurses into mapping elements; the list
	// * itself must be checked for emptiness here
	if len(config.Mappings) == 0 {
		return nil, fmt.Errorf("invalid configuration: at least one mapping is required")
	}

	// * a mapping without an explicit target clones in place
	for i := range config.Mappings {
		if config.Mappings[i].Target == "" {
			config.Mappings[i].Target = config.Mappings[i].Source
		}
	}

	return config, nil
}
