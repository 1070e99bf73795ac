package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// DjangoApp is the template set for the Django app glue files.
const DjangoApp = "django-app"

// Data holds the variables available to scaffold templates.
type Data struct {
	Project string // Django app and Vue.js project name, e.g. "myapp"
}

// Result lists the files a generation wrote, relative to the filesystem root.
type Result struct {
	OutputDir string
	Files     []string
}

// Generate renders every template of set into outputDir on fsys, replacing
// files that already exist. outputDir may already hold other files.
func Generate(fsys billy.Filesystem, set string, data Data, outputDir string) (*Result, error) {
	templatesDir := path.Join("scaffolds", set)

	entries, err := fs.ReadDir(scaffoldFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", set, err)
	}

	if err := fsys.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		content, err := Render(set, entry.Name(), data)
		if err != nil {
			return nil, err
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)
		if err := util.WriteFile(fsys, outPath, content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outPath)
	}

	return result, nil
}

// Render executes one template of set with data.
func Render(set, name string, data Data) ([]byte, error) {
	tmplPath := path.Join("scaffolds", set, name)
	tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
