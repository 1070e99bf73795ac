package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vuedj/vuedj/internal/branding"
	"github.com/vuedj/vuedj/internal/django"
	"github.com/vuedj/vuedj/internal/project"
)

var djangoDir string

func init() {
	for _, c := range []*cobra.Command{djBuildCmd, djangofyCmd} {
		c.Flags().StringVar(&djangoDir, "dir", ".", "Django project root")
	}
	rootCmd.AddCommand(djBuildCmd)
	rootCmd.AddCommand(djangofyCmd)
	rootCmd.AddCommand(djStartVueAppCmd)
}

func scaffoldApp(cmd *cobra.Command, dir, app string) error {
	if err := project.ValidateName(app); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Making Vue.js %s into django app\n", app)
	_, err := django.ScaffoldApp(newFS(dir), app, django.Options{RewriteCommand: branding.RewriteCommand()})
	if err != nil {
		return fmt.Errorf("converting %s into a django app: %w", app, err)
	}
	fmt.Fprintln(out, "Enjoy!")
	return nil
}

var djBuildCmd = &cobra.Command{
	Use:     "djbuild <app>",
	Aliases: []string{"framework-build"},
	Short:   "Turn templates/<app>/index.html into a Django template",
	Long: `Rewrite the webpack-generated templates/<app>/index.html so it loads the
staticfiles tag library and references its hashed CSS/JS files through
{% static %}. Projects converted with djangofy run this after every build.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := project.ValidateName(args[0]); err != nil {
			return err
		}
		name := django.EntryFilePath(args[0])
		if err := django.RewriteEntryFile(newFS(djangoDir), name); err != nil {
			return err
		}
		newStatusPrinter(cmd.OutOrStdout()).OK("Rewrote %s", name)
		return nil
	},
}

var djangofyCmd = &cobra.Command{
	Use:     "djangofy <app>",
	Aliases: []string{"framework-fy"},
	Short:   "Make an existing Vue.js project a Django app",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return scaffoldApp(cmd, djangoDir, args[0])
	},
}

var djStartVueAppCmd = &cobra.Command{
	Use:     "djstartvueapp <app>",
	Aliases: []string{"framework-start"},
	Short:   "Create a Vue.js project and make it a Django app",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := startProject(cmd, args[0]); err != nil {
			return err
		}
		return scaffoldApp(cmd, startDir, args[0])
	},
}
