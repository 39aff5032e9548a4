package cmakeproject

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/uber/dbgbroker/src/dbgbroker/entity"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ProjectsFile stores the content of a single projects file.
type ProjectsFile struct {
	Path     string
	Projects []entity.Project
	Imports  []string
}

const _importPrefix = "import "

// ParseProjectsFile parses a projects file. Apart from `import <path>` lines
// the file is YAML with a top level `projects` list:
//
//	projects:
//	  - sourceDirectory: app
//	    buildDirectory: app/build
//	import shared/projects.yaml
//
// Parsing is best effort, so partially valid content may be returned
// together with errors describing the issues found.
func ParseProjectsFile(projectsFile io.Reader) (file ProjectsFile, err error) {
	var rawYAML bytes.Buffer
	scanner := bufio.NewScanner(projectsFile)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, _importPrefix) {
			rawYAML.WriteString(line)
			rawYAML.WriteString("\n")
			continue
		}
		importPath := strings.TrimPrefix(line, _importPrefix)
		if commentStart := strings.Index(importPath, "#"); commentStart != -1 {
			importPath = importPath[:commentStart]
		}
		importPath = strings.TrimSpace(importPath)
		if importPath == "" {
			err = multierr.Append(err, fmt.Errorf("invalid import %q", line))
			continue
		}
		file.Imports = append(file.Imports, importPath)
	}
	if e := scanner.Err(); e != nil {
		return file, multierr.Append(err, e)
	}

	var content struct {
		Projects []entity.Project `yaml:"projects"`
	}
	if e := yaml.NewDecoder(&rawYAML).Decode(&content); e != nil && e != io.EOF {
		return file, multierr.Append(err, e)
	}
	for i, project := range content.Projects {
		if project.SourceDirectory == "" || project.BuildDirectory == "" {
			err = multierr.Append(err, fmt.Errorf("project %d: sourceDirectory and buildDirectory are required", i))
			continue
		}
		file.Projects = append(file.Projects, project)
	}
	return file, err
}
