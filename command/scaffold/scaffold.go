package scaffold

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/rahmatsyaparudin/modforge/command/app"
)

type Command struct {
	Module string `help:"Module name; the capitalized form becomes the module identifier." required:""`
	Table  string `help:"Override the storage table name." optional:""`
	Root   string `help:"Project root to generate into." default:"."`
	Config string `help:"Configuration file, relative to the project root." default:"modforge.yml"`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	summary, err := run(app, command)
	if err != nil {
		return err
	}
	return summary.Print(os.Stdout)
}

func run(app *app.App, command *Command) (*Summary, error) {
	// * derive the name forms once; every component receives them as an
	// * explicit value, nothing re-derives on its own
	names, err := Derive(command.Module, command.Table)
	if err != nil {
		return nil, err
	}

	config, err := LoadConfig(filepath.Join(command.Root, command.Config))
	if err != nil {
		return nil, err
	}

	rewriter, err := NewRewriter(config.Template.Token, names)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	record := func(artifact *Artifact) {
		if rel, err := filepath.Rel(command.Root, artifact.Path); err == nil {
			artifact = &Artifact{Path: rel, Dir: artifact.Dir, AlreadyExisted: artifact.AlreadyExisted}
		}
		switch {
		case artifact.AlreadyExisted:
			log.Printf("Skipped %s (already exists)", artifact.Path)
		case artifact.Dir:
			if app.Verbose {
				log.Printf("Created directory %s", artifact.Path)
			}
		default:
			log.Printf("Created %s", artifact.Path)
		}
		summary.RecordArtifact(artifact)
	}

	// * clone each template layer; a missing layer is reported and must
	// * not block generation of the remaining ones
	for _, mapping := range config.Mappings {
		artifacts, err := CloneTree(
			filepath.Join(command.Root, mapping.Source),
			filepath.Join(command.Root, mapping.Target),
			rewriter,
		)
		for _, artifact := range artifacts {
			record(artifact)
		}
		if err != nil {
			if errors.Is(err, ErrSourceMissing) {
				log.Printf("Skipping %s: %v", mapping.Source, err)
				continue
			}
			return nil, err
		}
	}

	// * generate the three single-file artifacts
	generators := []struct {
		name string
		fn   func(string, *Config, *Rewriter) (*Artifact, error)
	}{
		{"migration", GenerateMigration},
		{"seed", GenerateSeed},
		{"fixture", GenerateFixture},
	}
	for _, generator := range generators {
		artifact, err := generator.fn(command.Root, config, rewriter)
		if err != nil {
			if errors.Is(err, ErrSourceMissing) {
				log.Printf("Skipping %s: %v", generator.name, err)
				continue
			}
			return nil, err
		}
		record(artifact)
	}

	// * patch the shared configuration files
	for _, rule := range patchRules {
		target := filepath.Join(command.Root, rule.Target(&config.Shared))
		outcome, err := ApplyPatch(target, names.Expand(rule.Marker), names.Expand(rule.Fragment), rule.Anchors)
		if err != nil {
			if errors.Is(err, ErrSourceMissing) {
				log.Printf("Patch %s failed: %v", rule.Name, err)
				summary.RecordPatch(rule.Name, outcome)
				continue
			}
			return nil, err
		}
		log.Printf("Patch %s: %s", rule.Name, outcome)
		summary.RecordPatch(rule.Name, outcome)
	}

	return summary, nil
}
