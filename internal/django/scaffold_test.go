package django

import (
	"encoding/json"
	"errors"
	"io/fs"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vuedj/vuedj/internal/manifest"
	"github.com/vuedj/vuedj/internal/scaffold"
)

const webpackConfig = `
                module.exports = {
                    build: {
                        index: path.resolve(__dirname, '../dist/index.html'),
                        assetsRoot: path.resolve(__dirname, '../dist'),
                        assetsSubDirectory: 'static',
                    }
                }
                `

const djangoConfig = `
                module.exports = {
                    build: {
                        index: path.resolve(__dirname, '../templates/myapp/index.html'),
                        assetsRoot: path.resolve(__dirname, '../static'),
                        assetsSubDirectory: 'myapp',
                    }
                }
                `

func newVueProject(t *testing.T, app string) billy.Filesystem {
	t.Helper()
	fsys := memfs.New()

	pkg := map[string]any{
		"scripts": map[string]string{
			"dev":   "node build/dev-server.js",
			"start": "node build/dev-server.js",
			"build": "node build/build.js",
			"unit":  "cross-env BABEL_ENV=test karma start test/unit/karma.conf.js --single-run",
			"e2e":   "node test/e2e/runner.js",
			"test":  "npm run unit && npm run e2e",
			"lint":  "eslint --ext .js,.vue src test/unit/specs test/e2e/specs",
		},
	}
	data, err := json.Marshal(pkg)
	require.NoError(t, err)
	require.NoError(t, util.WriteFile(fsys, PackagePath(app), data, 0644))
	require.NoError(t, util.WriteFile(fsys, BuildConfigPath(app), []byte(webpackConfig), 0644))
	return fsys
}

func readJSON(t *testing.T, fsys billy.Filesystem, name string) map[string]any {
	t.Helper()
	data, err := util.ReadFile(fsys, name)
	require.NoError(t, err)
	var v map[string]any
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestScaffoldApp(t *testing.T) {
	fsys := newVueProject(t, "myapp")

	result, err := ScaffoldApp(fsys, "myapp", Options{RewriteCommand: "vuedj djbuild"})
	require.NoError(t, err)
	assert.Len(t, result.Files, 4)

	_, err = fsys.Stat("myapp/__init__.py")
	assert.NoError(t, err, "__init__.py not found")

	urls, err := util.ReadFile(fsys, "myapp/urls.py")
	require.NoError(t, err, "urls.py not found")
	want, err := scaffold.Render(scaffold.DjangoApp, "urls.py.tmpl", scaffold.Data{Project: "myapp"})
	require.NoError(t, err)
	assert.Equal(t, string(want), string(urls))

	pkg := readJSON(t, fsys, "myapp/package.json")
	scripts := pkg["scripts"].(map[string]any)
	assert.Equal(t, "node build/build.js && vuedj djbuild myapp", scripts["build"])
	assert.Equal(t, "npm run unit && npm run e2e", scripts["test"])
	assert.Len(t, scripts, 7)

	cfg, err := util.ReadFile(fsys, "myapp/config/index.js")
	require.NoError(t, err)
	assert.Equal(t, djangoConfig, string(cfg))
}

func TestScaffoldApp_MissingManifest(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, BuildConfigPath("myapp"), []byte(webpackConfig), 0644))

	result, err := ScaffoldApp(fsys, "myapp", Options{RewriteCommand: "vuedj djbuild"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	// Earlier steps are kept.
	require.NotNil(t, result)
	_, statErr := fsys.Stat("myapp/urls.py")
	assert.NoError(t, statErr)

	// Later steps never ran.
	cfg, err := util.ReadFile(fsys, BuildConfigPath("myapp"))
	require.NoError(t, err)
	assert.Equal(t, webpackConfig, string(cfg))
}

func TestScaffoldApp_RejectsInvalidName(t *testing.T) {
	for _, app := range []string{"my app", "shop'", "../shop"} {
		t.Run(app, func(t *testing.T) {
			fsys := memfs.New()
			result, err := ScaffoldApp(fsys, app, Options{RewriteCommand: "vuedj djbuild"})
			require.Error(t, err)
			assert.Nil(t, result)

			entries, err := fsys.ReadDir("/")
			require.NoError(t, err)
			assert.Empty(t, entries, "nothing should be written")
		})
	}
}

func TestPatchBuildScript_InvalidManifest(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, PackagePath("myapp"), []byte(`{"scripts":{"dev":"x"}}`), 0644))

	err := PatchBuildScript(fsys, "myapp", "vuedj djbuild")
	require.Error(t, err)
	assert.True(t, errors.Is(err, manifest.ErrInvalid))
}

func TestPatchBuildConfig(t *testing.T) {
	fsys := newVueProject(t, "myapp")

	require.NoError(t, PatchBuildConfig(fsys, "myapp"))

	cfg, err := util.ReadFile(fsys, BuildConfigPath("myapp"))
	require.NoError(t, err)
	assert.Equal(t, djangoConfig, string(cfg))
}

func TestPatchBuildConfigSource(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "assets root and subdirectory",
			src:  "assetsRoot: path.resolve(__dirname, '../dist'),\nassetsSubDirectory: 'static',\n",
			want: "assetsRoot: path.resolve(__dirname, '../static'),\nassetsSubDirectory: 'shop',\n",
		},
		{
			name: "index only",
			src:  "index: path.resolve(__dirname, '../dist/index.html'),",
			want: "index: path.resolve(__dirname, '../templates/shop/index.html'),",
		},
		{
			name: "unknown shape is untouched",
			src:  "module.exports = { outputDir: 'dist' }",
			want: "module.exports = { outputDir: 'dist' }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PatchBuildConfigSource(tt.src, "shop"))
		})
	}
}

func TestPatchBuildConfig_NoMatchLeavesFile(t *testing.T) {
	fsys := memfs.New()
	src := "module.exports = {}\n"
	require.NoError(t, util.WriteFile(fsys, BuildConfigPath("myapp"), []byte(src), 0644))

	require.NoError(t, PatchBuildConfig(fsys, "myapp"))

	cfg, err := util.ReadFile(fsys, BuildConfigPath("myapp"))
	require.NoError(t, err)
	assert.Equal(t, src, string(cfg))
}

func TestPatchBuildConfig_Missing(t *testing.T) {
	err := PatchBuildConfig(memfs.New(), "myapp")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestWriteFile_NoTempLeftBehind(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, writeFile(fsys, "a/b.txt", []byte("one")))
	require.NoError(t, writeFile(fsys, "a/b.txt", []byte("two")))

	data, err := util.ReadFile(fsys, "a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := fsys.ReadDir("a")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b.txt", entries[0].Name())
}
