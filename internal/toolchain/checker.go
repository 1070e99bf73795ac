package toolchain

import (
	"context"
	"os/exec"

	"github.com/vuedj/vuedj/internal/config"
	"github.com/vuedj/vuedj/internal/runtime"
)

// Checker probes the node/npm runtime and vue-cli.
type Checker struct {
	Runner runtime.Runner

	NodeBin    string
	NpmBin     string
	VueBin     string
	VuePackage string
	// MinVersion is the oldest vue-cli accepted by ProbeCLI.
	MinVersion *Version
}

// NewChecker builds a Checker from settings. An unparsable minimum version
// falls back to the default.
func NewChecker(r runtime.Runner, s config.Settings) *Checker {
	min, err := ParseVersion(s.VueMinVersion)
	if err != nil {
		min = MustParseVersion(config.DefaultVueMinVersion)
	}
	return &Checker{
		Runner:     r,
		NodeBin:    orDefault(s.NodeBin, config.DefaultNodeBin),
		NpmBin:     orDefault(s.NpmBin, config.DefaultNpmBin),
		VueBin:     orDefault(s.VueBin, config.DefaultVueBin),
		VuePackage: orDefault(s.VuePackage, config.DefaultVuePackage),
		MinVersion: min,
	}
}

// ProbeRuntime reports whether both node and npm answer their version
// command successfully.
func (c *Checker) ProbeRuntime(ctx context.Context) bool {
	for _, bin := range []string{c.NodeBin, c.NpmBin} {
		if _, ok := c.version(ctx, bin); !ok {
			return false
		}
	}
	return true
}

// ProbeCLI reports whether vue-cli is installed at MinVersion or newer.
func (c *Checker) ProbeCLI(ctx context.Context) bool {
	text, ok := c.version(ctx, c.VueBin)
	if !ok {
		return false
	}
	v, err := ParseVersion(text)
	if err != nil {
		return false
	}
	return v.AtLeast(c.MinVersion)
}

// InstallCLI installs vue-cli globally with npm. The result is not
// reported; callers re-run ProbeCLI to learn whether it worked.
func (c *Checker) InstallCLI(ctx context.Context) {
	_, _ = c.Runner.Run(ctx, c.NpmBin, []string{"install", "-g", c.VuePackage}, "")
}

// ToolStatus describes one external program for diagnostics.
type ToolStatus struct {
	Name    string
	Path    string // resolved location, empty when not on PATH
	Version string // reported version, empty when unknown
	Min     string // minimum accepted version, empty when any
	OK      bool
}

// Report returns the status of node, npm and vue-cli.
func (c *Checker) Report(ctx context.Context) []ToolStatus {
	var out []ToolStatus
	for _, bin := range []string{c.NodeBin, c.NpmBin, c.VueBin} {
		st := ToolStatus{Name: bin}
		if path, err := exec.LookPath(bin); err == nil {
			st.Path = path
		}
		text, ok := c.version(ctx, bin)
		v, err := ParseVersion(text)
		if ok && err == nil {
			st.Version = v.String()
		}
		st.OK = ok
		if bin == c.VueBin {
			st.Min = c.MinVersion.String()
			st.OK = ok && err == nil && v.AtLeast(c.MinVersion)
		}
		out = append(out, st)
	}
	return out
}

// version runs "<bin> --version" and returns its output when it exits 0.
func (c *Checker) version(ctx context.Context, bin string) (string, bool) {
	out, err := c.Runner.Run(ctx, bin, []string{"--version"}, "")
	if err != nil || !out.Success() {
		return "", false
	}
	return out.Combined, true
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
