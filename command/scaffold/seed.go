package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// seedStrippedMethods are template-only overrides whose logic lives in
// the shared seed base class. The generated seed inherits them, so the
// copies are deleted after substitution. Keeping the list declarative
// keeps the removal rules auditable in one place.
var seedStrippedMethods = []string{
	"tableName",
	"entityClass",
	"isValidRow",
}

// GenerateSeed writes the module's data seed from the seed template.
func GenerateSeed(root string, config *Config, rewriter *Rewriter) (*Artifact, error) {
	names := rewriter.Names
	seedDir := filepath.Join(root, config.Output.Seed)
	target := filepath.Join(seedDir, "Seed"+names.Pascal+"Data.php")

	// * the seed name carries no timestamp; its bare existence is the
	// * idempotency record
	if _, err := os.Stat(target); err == nil {
		return &Artifact{Path: target, AlreadyExisted: true}, nil
	}

	templatePath := filepath.Join(root, config.Template.Seed)
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, templatePath)
		}
		return nil, fmt.Errorf("failed to read seed template: %w", err)
	}

	// * capture the template's entity class reference before rewriting so
	// * the constant can be replaced with the module's form explicitly
	entityClass := extractConstant(string(content), "ENTITY_CLASS")
	if entityClass != "" {
		entityClass = string(rewriter.Rewrite([]byte(entityClass)))
	}

	// * class name, repository interface token and constructor parameter
	// * all follow the standard substitutions
	text := string(rewriter.Rewrite(content))

	// * drop the overrides hoisted into the shared base class
	for _, method := range seedStrippedMethods {
		text = removeMethod(text, method)
	}

	// * pin the three module-specific constants
	dataFile := config.Output.Fixture + "/" + names.Lower + ".php"
	text = replaceConstant(text, "DATA_FILE", "'"+dataFile+"'")
	text = replaceConstant(text, "TABLE_NAME", "'"+names.TableName+"'")
	if entityClass != "" {
		text = replaceConstant(text, "ENTITY_CLASS", entityClass)
	}

	if err := os.MkdirAll(seedDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create seed directory: %w", err)
	}

	if err := os.WriteFile(target, []byte(text), 0644); err != nil {
		return nil, fmt.Errorf("failed to write seed %s: %w", target, err)
	}

	return &Artifact{Path: target}, nil
}

// removeMethod deletes a method body by locating its declaration and
// scanning to the matching closing brace. This is a heuristic delete
// over source text, not a parse; an absent method is a no-op.
func removeMethod(text string, name string) string {
	marker := "function " + name + "("
	start := strings.Index(text, marker)
	if start == -1 {
		return text
	}

	// * widen to the start of the declaration line
	lineStart := strings.LastIndex(text[:start], "\n") + 1

	// * find the opening brace, then match its closing one
	open := strings.Index(text[start:], "{")
	if open == -1 {
		return text
	}
	open += start

	depth := 0
	end := -1
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return text
	}

	// * consume the rest of the closing brace's line
	if nl := strings.IndexByte(text[end:], '\n'); nl != -1 {
		end += nl + 1
	} else {
		end = len(text)
	}

	// * eat the blank line that separated the method from its neighbor
	if lineStart >= 2 && strings.HasSuffix(text[:lineStart], "\n\n") {
		lineStart--
	}

	return text[:lineStart] + text[end:]
}

func constantPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`const ` + regexp.QuoteMeta(name) + ` = ([^;]+);`)
}

func extractConstant(text string, name string) string {
	match := constantPattern(name).FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return match[1]
}

func replaceConstant(text string, name string, literal string) string {
	return constantPattern(name).ReplaceAllString(text,
		"const "+name+" = "+strings.ReplaceAll(literal, "$", "$$")+";")
}
