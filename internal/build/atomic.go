package build

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// writeFileAtomic writes to a temp file next to path and renames it into place.
func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = fs.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := fs.Chmod(tmpPath, filePerm); err != nil {
		cleanup()
		return err
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
