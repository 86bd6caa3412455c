package xorg

import "strings"

// fallbackModes maps a primary resolution to the ordered list of modes the
// server may fall back to when the primary cannot be set. Earlier entries
// are preferred.
var fallbackModes = map[string][]string{
	"1920x1200": {"1920x1080", "1600x900", "1280x1024", "1024x768"},
	"1920x1080": {"1600x900", "1280x1024", "1024x768", "800x600"},
	"1680x1050": {"1440x900", "1280x1024", "1024x768", "800x600"},
	"1600x900":  {"1366x768", "1280x1024", "1024x768", "800x600"},
	"1440x900":  {"1280x800", "1024x768", "800x600"},
	"1366x768":  {"1280x720", "1024x768", "800x600"},
	"1280x1024": {"1024x768", "800x600"},
	"1280x800":  {"1024x768", "800x600"},
	"1280x720":  {"1024x768", "800x600"},
	"1024x768":  {"800x600", "640x480"},
	"800x600":   {"640x480"},
}

// genericFallbacks is used for resolutions the table does not know about.
var genericFallbacks = []string{"1024x768", "800x600", "640x480"}

// Modes returns the primary resolution followed by its fallback list,
// with the primary removed from the fallbacks if it appears there.
func Modes(primary string) []string {
	fallbacks, ok := fallbackModes[primary]
	if !ok {
		fallbacks = genericFallbacks
	}

	modes := []string{primary}
	for _, m := range fallbacks {
		if m != primary {
			modes = append(modes, m)
		}
	}
	return modes
}

// ModeLine renders the space-joined quoted mode list for the Display
// subsection, e.g. `"1600x900" "1366x768" "1024x768"`.
func ModeLine(primary string) string {
	modes := Modes(primary)
	quoted := make([]string, len(modes))
	for i, m := range modes {
		quoted[i] = `"` + m + `"`
	}
	return strings.Join(quoted, " ")
}
