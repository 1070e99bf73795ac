package project

import (
	"fmt"
	"path/filepath"
	"regexp"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Config identifies a project: Name is created inside Dir.
type Config struct {
	Name string
	Dir  string
}

// ProjectDir returns the directory holding the project.
func (c Config) ProjectDir() string {
	return filepath.Join(c.Dir, c.Name)
}

// Validate checks that Name can serve as both an npm package and a Django app name.
func (c Config) Validate() error {
	return ValidateName(c.Name)
}

// ValidateName checks that name can serve as both an npm package and a
// Django app name. Such names are also safe to embed in generated Python and
// JavaScript string literals.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match %s", name, namePattern.String())
	}
	return nil
}
