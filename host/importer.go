/*
File    : psl/host/importer.go

Package host supplies the filesystem-facing services the core language
packages describe only as interfaces, per §1's "IMPORT file resolution
are specified only through the interfaces the evaluator requires of the
host". Grounded on go-mix/file's os.File-backed FileObject, trimmed to
the one operation PSL's IMPORT needs: reading a whole file's text.
*/
package host

import (
	"os"
	"path/filepath"
)

// FileImporter reads IMPORT targets from the local filesystem relative
// to the directory a run was launched from.
type FileImporter struct {
	// BaseDir anchors relative IMPORT paths, normally the directory of
	// the file passed to `psl run`.
	BaseDir string
}

// ReadFile implements eval.Importer.
func (f *FileImporter) ReadFile(path string) (string, error) {
	full := path
	if f.BaseDir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(f.BaseDir, path)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
