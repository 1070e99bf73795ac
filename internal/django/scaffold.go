package django

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/vuedj/vuedj/internal/manifest"
	"github.com/vuedj/vuedj/internal/project"
	"github.com/vuedj/vuedj/internal/scaffold"
)

// Options tune ScaffoldApp.
type Options struct {
	// RewriteCommand is appended to the build script, followed by the app
	// name (e.g. "vuedj djbuild").
	RewriteCommand string
}

// Result lists the files ScaffoldApp created or modified.
type Result struct {
	Files []string
}

// PackagePath returns the npm manifest of project app.
func PackagePath(app string) string {
	return filepath.Join(app, "package.json")
}

// ScaffoldApp makes the Vue.js project in directory app a Django app: it
// writes __init__.py and urls.py, appends the entry-file rewrite to the npm
// build script and patches the webpack build configuration. Steps run in
// that order and the first error stops the sequence; earlier changes are
// not rolled back. An app name that is not a valid project name is rejected
// before anything is written.
func ScaffoldApp(fsys billy.Filesystem, app string, opts Options) (*Result, error) {
	if err := project.ValidateName(app); err != nil {
		return nil, err
	}
	generated, err := scaffold.Generate(fsys, scaffold.DjangoApp, scaffold.Data{Project: app}, app)
	if err != nil {
		return nil, err
	}
	result := &Result{Files: generated.Files}

	if err := PatchBuildScript(fsys, app, opts.RewriteCommand); err != nil {
		return result, err
	}
	result.Files = append(result.Files, PackagePath(app))

	if err := PatchBuildConfig(fsys, app); err != nil {
		return result, err
	}
	result.Files = append(result.Files, BuildConfigPath(app))

	return result, nil
}

// PatchBuildScript appends "&& <rewriteCommand> <app>" to the build script
// of <app>/package.json. Other entries keep their values and order.
func PatchBuildScript(fsys billy.Filesystem, app, rewriteCommand string) error {
	name := PackagePath(app)
	data, err := readFile(fsys, name)
	if err != nil {
		return err
	}

	pkg, err := manifest.ParsePackage(data)
	if err != nil {
		return err
	}
	if err := pkg.AppendToScript("build", rewriteCommand+" "+app); err != nil {
		return err
	}

	out, err := pkg.Bytes()
	if err != nil {
		return err
	}
	return writeFile(fsys, name, out)
}
