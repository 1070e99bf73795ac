package scaffold

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DjangoApp(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "myapp/package.json", []byte("{}"), 0644))

	result, err := Generate(fsys, DjangoApp, Data{Project: "myapp"}, "myapp")
	require.NoError(t, err)

	files := append([]string(nil), result.Files...)
	sort.Strings(files)
	assert.Equal(t, []string{
		filepath.Join("myapp", "__init__.py"),
		filepath.Join("myapp", "urls.py"),
	}, files)

	initPy, err := util.ReadFile(fsys, "myapp/__init__.py")
	require.NoError(t, err)
	assert.Empty(t, initPy)

	urls, err := util.ReadFile(fsys, "myapp/urls.py")
	require.NoError(t, err)
	assert.Contains(t, string(urls), "template_name='myapp/index.html'")
	assert.Contains(t, string(urls), "name='myapp'")
	assert.NotContains(t, string(urls), "{{")

	existing, err := util.ReadFile(fsys, "myapp/package.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(existing), "unrelated files are left alone")
}

func TestGenerate_Overwrites(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "myapp/urls.py", []byte("old"), 0644))

	_, err := Generate(fsys, DjangoApp, Data{Project: "myapp"}, "myapp")
	require.NoError(t, err)

	urls, err := util.ReadFile(fsys, "myapp/urls.py")
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(urls))
}

func TestGenerate_UnknownSet(t *testing.T) {
	_, err := Generate(memfs.New(), "rails-app", Data{Project: "x"}, "x")
	assert.Error(t, err)
}

func TestRender_URLs(t *testing.T) {
	got, err := Render(DjangoApp, "urls.py.tmpl", Data{Project: "shop"})
	require.NoError(t, err)

	assert.Contains(t, string(got), "TemplateView.as_view(template_name='shop/index.html'), name='shop')")
	assert.NotContains(t, string(got), "{{")
}
