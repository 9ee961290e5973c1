/*
File    : psl/eval/eval_import.go

IMPORT evaluation: the host reads the named file, the result is lexed
and parsed like any other source, and its statements run in the
CURRENT environment so its definitions become visible to the importer,
per §4.4. Grounded on go-mix's file.FileObject read path, generalized
behind the Importer interface so this package does not depend on a
concrete filesystem layout (see psl/host for the CLI's implementation).
*/
package eval

import (
	"fmt"

	"github.com/pslstudio/psl/env"
	"github.com/pslstudio/psl/parser"
	"github.com/pslstudio/psl/value"
)

func (e *Evaluator) evalImport(n *parser.Import, scope *env.Environment) (value.Value, error) {
	if e.Importer == nil {
		return nil, fmt.Errorf("IMPORT \"%s\" failed: no file host configured", n.Path)
	}
	src, err := e.Importer.ReadFile(n.Path)
	if err != nil {
		return nil, fmt.Errorf("IMPORT \"%s\" failed: %w", n.Path, err)
	}
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return e.evalProgram(prog, scope)
}
