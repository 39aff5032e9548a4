package cmakeproject

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/uber/dbgbroker/src/dbgbroker/entity"
	"github.com/uber/dbgbroker/src/dbgbroker/internal/fs"
	"go.uber.org/multierr"
)

// Loader reads a projects file and everything it imports.
type Loader struct {
	fs fs.BrokerFS
}

// NewLoader creates a Loader reading through the given filesystem.
func NewLoader(fs fs.BrokerFS) *Loader {
	return &Loader{fs: fs}
}

// Load returns the projects of root followed by those of its imports, depth
// first, in the order they are declared. Relative import paths and relative
// project directories are resolved against the directory of the file that
// names them. Files already visited are skipped.
func (l *Loader) Load(root string) ([]entity.Project, error) {
	visited := make(map[string]bool)
	return l.load(filepath.Clean(root), visited)
}

func (l *Loader) load(path string, visited map[string]bool) (projects []entity.Project, err error) {
	if visited[path] {
		return nil, nil
	}
	visited[path] = true

	content, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading projects file %s: %w", path, err)
	}

	file, err := ParseProjectsFile(bytes.NewReader(content))
	if err != nil {
		err = fmt.Errorf("parsing projects file %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for _, project := range file.Projects {
		projects = append(projects, entity.Project{
			SourceDirectory: resolve(dir, project.SourceDirectory),
			BuildDirectory:  resolve(dir, project.BuildDirectory),
		})
	}

	for _, imported := range file.Imports {
		nested, e := l.load(resolve(dir, imported), visited)
		projects = append(projects, nested...)
		err = multierr.Append(err, e)
	}
	return projects, err
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}
