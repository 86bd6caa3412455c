package xorg

import (
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Probe reads the framebuffer sysfs files to decide whether the host's
// current mode can be trusted as a default resolution.
//
// The adapter name must exactly match Generic: a kernel driver that already
// claimed the framebuffer reports its own name there, and the size it
// exposes may be a scaled or virtualized value rather than what the panel
// can actually do.
type Probe struct {
	Fs       afero.Fs
	NamePath string
	SizePath string
	Generic  string
	KnownBad []string
	MinWidth int
}

// GoodResolution resolves a sentinel resolution ("default" or "safe")
// against the framebuffer state. Non-sentinel input is returned unchanged.
// If the reported mode cannot be trusted, the sentinel is returned
// unchanged and the caller falls back to its fixed constant.
func (p Probe) GoodResolution(res string) string {
	if !IsSentinel(res) {
		return res
	}

	name, err := p.readLine(p.NamePath)
	if err != nil || name != p.Generic {
		return res
	}

	size, err := p.readLine(p.SizePath)
	if err != nil {
		return res
	}

	width, height, ok := parseSize(size)
	if !ok {
		return res
	}

	candidate := strconv.Itoa(width) + "x" + strconv.Itoa(height)
	for _, bad := range p.KnownBad {
		if candidate == bad {
			return res
		}
	}
	if width < p.MinWidth {
		return res
	}

	return candidate
}

func (p Probe) readLine(path string) (string, error) {
	data, err := afero.ReadFile(p.Fs, path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// parseSize parses the "width,height" shape of virtual_size.
func parseSize(s string) (int, int, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}
