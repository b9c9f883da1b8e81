package scaffold

import (
	"strings"

	"github.com/lithammer/dedent"
)

// PatchRule declares one edit to a shared configuration file. Marker
// and Fragment carry name placeholders ({Module}, {module}, {MODULE},
// {module-path}, {table}) expanded per generated module; anchors are
// fixed literals the boilerplate is known to contain. Supporting a new
// shared file means adding an entry here, not new logic.
type PatchRule struct {
	Name     string
	Target   func(shared *SharedConfig) string
	Marker   string
	Fragment string
	Anchors  []Anchor
}

var patchRules = []PatchRule{
	{
		Name:   "repository wiring",
		Target: func(shared *SharedConfig) string { return shared.Repositories },
		Marker: `{Module}RepositoryInterface::class`,
		Fragment: fragment(`
			\App\Module\{Module}\Repository\{Module}RepositoryInterface::class => \App\Module\{Module}\Repository\{Module}Repository::class,
		`),
		Anchors: []Anchor{
			{Find: `\App\Module\Example\Repository\ExampleRepositoryInterface::class`},
			{Find: "];", Before: true},
		},
	},
	{
		Name:   "permission map",
		Target: func(shared *SharedConfig) string { return shared.Permissions },
		Marker: `'{module}.index'`,
		Fragment: fragment(`
			'{module}.index' => ['admin', 'staff'],
			'{module}.view' => ['admin', 'staff'],
			'{module}.create' => ['admin'],
			'{module}.update' => ['admin'],
			'{module}.delete' => ['admin'],
		`),
		Anchors: []Anchor{
			{Find: "// Module Permissions"},
			{Find: "];", Before: true},
		},
	},
	{
		Name:   "route table",
		Target: func(shared *SharedConfig) string { return shared.Routes },
		Marker: `// {Module} Routes`,
		Fragment: fragment(`
			// {Module} Routes
			$routes->get('/{module-path}', [\App\Module\{Module}\Controller\{Module}Controller::class, 'index']);
			$routes->get('/{module-path}/{id}', [\App\Module\{Module}\Controller\{Module}Controller::class, 'view']);
			$routes->post('/{module-path}', [\App\Module\{Module}\Controller\{Module}Controller::class, 'create']);
			$routes->put('/{module-path}/{id}', [\App\Module\{Module}\Controller\{Module}Controller::class, 'update']);
			$routes->delete('/{module-path}/{id}', [\App\Module\{Module}\Controller\{Module}Controller::class, 'delete']);
		`),
		Anchors: []Anchor{
			{Find: "// Module Routes"},
			{Find: "};", Before: true},
		},
	},
}

// fragment normalizes an inline block into the four-space indentation
// the shared files use, with one trailing newline.
func fragment(block string) string {
	block = strings.Trim(dedent.Dedent(block), "\n")

	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "    " + line
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
