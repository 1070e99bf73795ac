package django

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-billy/v5"
)

// StaticLoadDirective is prepended to a rewritten entry file so the
// {% static %} tag is available.
const StaticLoadDirective = "{% load staticfiles %}"

// Bundler output shape: unquoted attributes pointing at /static/css and
// /static/js with a content-hashed file name.
var (
	stylesheetRef = regexp.MustCompile(`href=(/static/css/[^\s>"']+\.css)`)
	scriptRef     = regexp.MustCompile(`src=(/static/js/[^\s>"']+\.js)`)
)

// LineKind classifies one line of a generated entry file.
type LineKind int

const (
	Plain LineKind = iota
	StylesheetLine
	ScriptLine
)

func (k LineKind) String() string {
	switch k {
	case StylesheetLine:
		return "stylesheet"
	case ScriptLine:
		return "script"
	default:
		return "plain"
	}
}

// AssetKind is the type of a referenced static asset.
type AssetKind string

const (
	AssetStyle  AssetKind = "style"
	AssetScript AssetKind = "script"
)

// AssetRef is a static asset referenced by the entry file. Path includes
// the content hash and is never altered.
type AssetRef struct {
	Kind AssetKind
	Path string
}

// EntryFilePath returns the Django template webpack writes for app.
func EntryFilePath(app string) string {
	return filepath.Join("templates", app, "index.html")
}

// Classify reports whether line references a stylesheet, a script, or neither.
func Classify(line string) LineKind {
	switch {
	case stylesheetRef.MatchString(line):
		return StylesheetLine
	case scriptRef.MatchString(line):
		return ScriptLine
	default:
		return Plain
	}
}

// RewriteLine routes bare /static/ asset paths through {% static %}.
// Plain lines are returned unchanged.
func RewriteLine(line string) string {
	line = stylesheetRef.ReplaceAllString(line, `href="{% static '$1' %}"`)
	return scriptRef.ReplaceAllString(line, `src="{% static '$1' %}"`)
}

// ExtractAssets returns the asset references found in lines, in order.
func ExtractAssets(lines []string) []AssetRef {
	var refs []AssetRef
	for _, line := range lines {
		for _, m := range stylesheetRef.FindAllStringSubmatch(line, -1) {
			refs = append(refs, AssetRef{Kind: AssetStyle, Path: m[1]})
		}
		for _, m := range scriptRef.FindAllStringSubmatch(line, -1) {
			refs = append(refs, AssetRef{Kind: AssetScript, Path: m[1]})
		}
	}
	return refs
}

// RewriteEntry returns content with StaticLoadDirective as its first line
// and every other line passed through RewriteLine. Line endings are kept.
func RewriteEntry(content string) string {
	lines := splitLines(content)

	eol := "\n"
	if len(lines) > 0 && strings.HasSuffix(lines[0], "\r\n") {
		eol = "\r\n"
	}

	var b strings.Builder
	b.Grow(len(content) + len(StaticLoadDirective) + len(eol))
	b.WriteString(StaticLoadDirective)
	b.WriteString(eol)
	for _, line := range lines {
		b.WriteString(RewriteLine(line))
	}
	return b.String()
}

// RewriteEntryFile rewrites the entry file at name in place. Running it twice
// prepends a second directive.
func RewriteEntryFile(fsys billy.Filesystem, name string) error {
	data, err := readFile(fsys, name)
	if err != nil {
		return err
	}
	return writeFile(fsys, name, []byte(RewriteEntry(string(data))))
}

// splitLines splits s after each "\n", keeping terminators. A final line
// without terminator is kept as is.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
