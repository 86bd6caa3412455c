package xorg

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Inventory lists the X drivers installed on the host by scanning the
// driver module directory for files carrying the module suffix.
type Inventory struct {
	Fs     afero.Fs
	Dir    string
	Suffix string
}

// List returns the installed driver names, suffix stripped, sorted.
func (inv Inventory) List() ([]string, error) {
	entries, err := afero.ReadDir(inv.Fs, inv.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading driver directory %s: %w", inv.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), inv.Suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), inv.Suffix))
	}
	sort.Strings(names)
	return names, nil
}

// Has reports whether the driver module file for name exists.
func (inv Inventory) Has(name string) bool {
	ok, err := afero.Exists(inv.Fs, filepath.Join(inv.Dir, name+inv.Suffix))
	return err == nil && ok
}

// Validate checks the selected driver against the inventory. An unknown
// driver is replaced by defaultDriver and a warning is reported, unless the
// force flag is set, in which case the driver passes through untouched.
func (inv Inventory) Validate(s *Settings, defaultDriver string, rep *Reporter) {
	if s.Driver == "" || s.Force {
		return
	}
	if inv.Has(s.Driver) {
		return
	}
	rep.Warnf("driver %q is not installed, using %q instead (use --force to override)",
		s.Driver, defaultDriver)
	s.FallbackFrom = s.Driver
	s.Driver = defaultDriver
}
