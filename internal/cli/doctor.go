package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"
	"github.com/vuedj/vuedj/internal/branding"
	"github.com/vuedj/vuedj/internal/django"
	"github.com/vuedj/vuedj/internal/manifest"
	"github.com/vuedj/vuedj/internal/project"
)

var doctorDir string

func init() {
	doctorCmd.Flags().StringVar(&doctorDir, "dir", ".", "Django project root")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [app]",
	Short: "Health check for the toolchain and a converted app",
	Long: `Report the node, npm and vue-cli installations. With an app name, also check
that the app has been converted with djangofy and that its last build was
rewritten with djbuild.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := newStatusPrinter(cmd.OutOrStdout())

		fmt.Fprintln(cmd.OutOrStdout(), "Toolchain check:")
		printToolReport(p, newChecker(cmd).Report(cmd.Context()))

		if len(args) == 0 {
			return nil
		}

		app := args[0]
		if err := project.ValidateName(app); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "App check (%s):\n", app)
		if problems := checkApp(p, newFS(doctorDir), app); problems > 0 {
			return fmt.Errorf("%d problem(s) found in %s", problems, app)
		}
		return nil
	},
}

// checkApp reports on the files djangofy and djbuild produce and returns the
// number of problems found.
func checkApp(p *statusPrinter, fsys billy.Filesystem, app string) int {
	problems := 0

	for _, name := range []string{"__init__.py", "urls.py"} {
		path := filepath.Join(app, name)
		if _, err := fsys.Stat(path); err != nil {
			p.Miss("%s (run '%s djangofy %s')", path, branding.CLIName(), app)
			problems++
			continue
		}
		p.OK("%s exists", path)
	}

	problems += checkPackage(p, fsys, app)
	problems += checkBuildConfig(p, fsys, app)
	problems += checkEntryFile(p, fsys, app)
	return problems
}

func checkPackage(p *statusPrinter, fsys billy.Filesystem, app string) int {
	path := django.PackagePath(app)
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		p.Fail("%s: %v", path, err)
		return 1
	}

	result, err := manifest.Validate(data)
	if err != nil {
		p.Fail("%s: %v", path, err)
		return 1
	}
	if !result.Valid {
		p.Fail("%s has %d validation issue(s):", path, len(result.Issues))
		for _, issue := range result.Issues {
			p.Detail("    - " + issue.String())
		}
		return 1
	}

	pkg, err := manifest.ParsePackage(data)
	if err != nil {
		p.Fail("%s: %v", path, err)
		return 1
	}
	build, _ := pkg.Script("build")
	hook := branding.RewriteCommand() + " " + app
	if !strings.Contains(build, hook) {
		p.Warn("%s build script does not run %q", path, hook)
		return 1
	}
	p.OK("%s build script runs %q", path, hook)
	return 0
}

func checkBuildConfig(p *statusPrinter, fsys billy.Filesystem, app string) int {
	path := django.BuildConfigPath(app)
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		p.Fail("%s: %v", path, err)
		return 1
	}
	if django.PatchBuildConfigSource(string(data), app) != string(data) {
		p.Warn("%s still writes to dist/", path)
		return 1
	}
	p.OK("%s targets templates/%s and static/%s", path, app, app)
	return 0
}

func checkEntryFile(p *statusPrinter, fsys billy.Filesystem, app string) int {
	path := django.EntryFilePath(app)
	data, err := util.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		p.Miss("%s (build the project first)", path)
		return 0
	}
	if err != nil {
		p.Fail("%s: %v", path, err)
		return 1
	}
	if !strings.HasPrefix(string(data), django.StaticLoadDirective) {
		p.Warn("%s has not been rewritten (run '%s djbuild %s')", path, branding.CLIName(), app)
		return 1
	}
	p.OK("%s is a Django template", path)
	return 0
}
