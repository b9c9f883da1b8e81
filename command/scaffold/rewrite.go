package scaffold

import (
	"regexp"
	"strings"
)

// Rewriter substitutes the template module's name tokens with the
// target module's forms. It is a pure transformation over bytes; all
// I/O belongs to the callers.
type Rewriter struct {
	Template *ModuleNameSet
	Names    *ModuleNameSet
}

func NewRewriter(templateToken string, names *ModuleNameSet) (*Rewriter, error) {
	// * derive the same form set for the template token so the rewriter
	// * works for any reference module, not a hard-coded one
	template, err := Derive(templateToken, "")
	if err != nil {
		return nil, err
	}

	return &Rewriter{
		Template: template,
		Names:    names,
	}, nil
}

// Rewrite applies the three literal substitutions in fixed order. The
// capitalized token goes first: the lowercase and uppercase tokens are
// substrings of it in the common case, and replacing them first would
// corrupt the capitalized occurrences.
func (r *Rewriter) Rewrite(content []byte) []byte {
	text := string(content)

	text = strings.ReplaceAll(text, r.Template.Pascal, r.Names.Pascal)
	text = strings.ReplaceAll(text, r.Template.Lower, r.Names.Lower)
	text = strings.ReplaceAll(text, r.Template.Upper, r.Names.Upper)

	// * when the table name diverges from the module identifier, rewrite
	// * quoted table-name literals and storage identifier prefixes only;
	// * other quoted occurrences (permission keys, paths) keep the
	// * lowercase module form
	if r.Names.TableName != r.Names.Lower {
		pattern := regexp.MustCompile(`(TABLE[A-Z_]*\s*=\s*)(['"])` + regexp.QuoteMeta(r.Names.Lower) + `(['"])`)
		text = pattern.ReplaceAllString(text, "${1}${2}"+r.Names.TableName+"${3}")
		text = strings.ReplaceAll(text, r.Names.Lower+"_", r.Names.TableName+"_")
	}

	return []byte(text)
}

// RewritePath renames the template token inside a path. Only the
// capitalized form is substituted; directory and file names in the
// boilerplate never carry the lowercase or uppercase forms.
func (r *Rewriter) RewritePath(path string) string {
	if !strings.Contains(path, r.Template.Pascal) {
		return path
	}
	return strings.ReplaceAll(path, r.Template.Pascal, r.Names.Pascal)
}
