package django

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

const (
	filePerm  os.FileMode = 0644
	tmpSuffix             = ".vuedj-tmp"
)

// readFile reads a whole file from fsys.
func readFile(fsys billy.Filesystem, name string) ([]byte, error) {
	data, err := util.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// writeFile replaces name with data through a temporary file and a rename,
// so readers never observe a half-written file. The previous file mode is
// kept when the filesystem supports chmod.
func writeFile(fsys billy.Filesystem, name string, data []byte) error {
	mode := filePerm
	if info, err := fsys.Stat(name); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(name)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmpName := filepath.Join(dir, "."+filepath.Base(name)+tmpSuffix)
	tmp, err := fsys.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = fsys.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fsys.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := fsys.Rename(tmpName, name); err != nil {
		_ = fsys.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", name, err)
	}

	if ch, ok := fsys.(billy.Change); ok {
		_ = ch.Chmod(name, mode)
	}
	return nil
}
