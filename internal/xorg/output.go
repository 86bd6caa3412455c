package xorg

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteConfig writes content to path, creating parent directories as
// needed. A pre-existing file at path is rotated to path+".bak" first,
// but only if no backup exists yet; an earlier backup is never clobbered.
func WriteConfig(fs afero.Fs, path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return err
	}
	if exists {
		bak := path + ".bak"
		bakExists, err := afero.Exists(fs, bak)
		if err != nil {
			return err
		}
		if !bakExists {
			if err := fs.Rename(path, bak); err != nil {
				return fmt.Errorf("rotating %s to %s: %w", path, bak, err)
			}
		}
	}

	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
