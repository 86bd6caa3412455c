// Package xorg implements the configuration pipeline: option-string
// parsing, driver inventory validation, framebuffer probing, mode
// fallback selection and rendering of the final document.
package xorg

// Resolution sentinels left in place by the option parser when the host's
// framebuffer should be consulted for a usable mode.
const (
	ResolutionDefault = "default"
	ResolutionSafe    = "safe"
)

// Settings holds everything needed to render one configuration document.
// Zero values mean the field was never set and its lines are omitted from
// the output. The parser builds it incrementally; after validation it is
// read-only.
type Settings struct {
	Driver      string
	Resolution  string
	Depth       int
	HorizSync   string
	VertRefresh string
	Composite   bool
	AccelMethod string
	Force       bool
	OutputPath  string

	// FallbackFrom records the originally requested driver when inventory
	// validation substituted the default driver, so the renderer can emit
	// a warning comment next to the Driver line.
	FallbackFrom string
}

// IsSentinel reports whether res is one of the parser's placeholder values
// rather than a concrete WxH string.
func IsSentinel(res string) bool {
	return res == ResolutionDefault || res == ResolutionSafe
}
