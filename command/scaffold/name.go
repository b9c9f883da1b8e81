package scaffold

import (
	"errors"
	"strings"

	"github.com/rahmatsyaparudin/modforge/utility/form"
)

var ErrInvalidInput = errors.New("module name must not be empty")

// ModuleNameSet holds every derived form of the operator-supplied module
// name. It is computed once per invocation and passed by value through
// the whole run; no component derives names on its own.
type ModuleNameSet struct {
	Raw       string
	Pascal    string
	Lower     string
	Upper     string
	Kebab     string
	TableName string
}

// Derive computes the name-form set from a raw module name. Pascal is
// the raw name with only the first letter uppercased; multi-word inputs
// are not split or normalized further.
func Derive(raw string, tableOverride string) (*ModuleNameSet, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrInvalidInput
	}

	// * derive case forms
	pascal := form.UpperFirst(raw)
	lower := strings.ToLower(raw)
	upper := strings.ToUpper(raw)
	kebab := form.ToKebabCase(pascal)

	// * table name defaults to the lowercase form
	tableName := tableOverride
	if tableName == "" {
		tableName = lower
	}

	return &ModuleNameSet{
		Raw:       raw,
		Pascal:    pascal,
		Lower:     lower,
		Upper:     upper,
		Kebab:     kebab,
		TableName: tableName,
	}, nil
}

// Expand resolves the placeholder tokens used by the declarative patch
// rules against this name set.
func (r *ModuleNameSet) Expand(s string) string {
	// * the longer token first, or {module} would eat its prefix
	replacer := strings.NewReplacer(
		"{module-path}", r.Kebab,
		"{Module}", r.Pascal,
		"{module}", r.Lower,
		"{MODULE}", r.Upper,
		"{table}", r.TableName,
	)
	return replacer.Replace(s)
}
