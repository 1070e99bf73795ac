package django

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// BuildConfigPath returns the webpack build configuration of project app.
func BuildConfigPath(app string) string {
	return filepath.Join(app, "config", "index.js")
}

// buildConfigReplacer maps the webpack template's dist/ layout onto Django's
// templates/<app> and static/<app> layout. Order matters: the index.html
// path must be replaced before its ../dist prefix.
func buildConfigReplacer(app string) *strings.Replacer {
	return strings.NewReplacer(
		"path.resolve(__dirname, '../dist/index.html')",
		"path.resolve(__dirname, '../templates/"+app+"/index.html')",
		"path.resolve(__dirname, '../dist')",
		"path.resolve(__dirname, '../static')",
		"assetsSubDirectory: 'static'",
		"assetsSubDirectory: '"+app+"'",
	)
}

// PatchBuildConfigSource returns src with its output paths pointed at
// Django's layout. Unknown shapes are returned unchanged.
func PatchBuildConfigSource(src, app string) string {
	return buildConfigReplacer(app).Replace(src)
}

// PatchBuildConfig rewrites <app>/config/index.js in place. It is a no-op
// when none of the expected values are present.
func PatchBuildConfig(fsys billy.Filesystem, app string) error {
	name := BuildConfigPath(app)
	data, err := readFile(fsys, name)
	if err != nil {
		return err
	}
	patched := PatchBuildConfigSource(string(data), app)
	if patched == string(data) {
		return nil
	}
	return writeFile(fsys, name, []byte(patched))
}
