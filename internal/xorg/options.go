package xorg

import (
	"regexp"
	"strconv"
	"strings"
)

var resolutionRe = regexp.MustCompile(`^\d+x\d+$`)

// Defaults carries the configured values the parser substitutes for the
// `default` and `safe` tokens.
type Defaults struct {
	Driver string
}

// tokenRule classifies one option token. Rules are tried in order and the
// first match wins; apply mutates the settings under construction.
type tokenRule struct {
	match func(tok string) bool
	apply func(tok string, s *Settings)
}

func literal(words ...string) func(string) bool {
	return func(tok string) bool {
		for _, w := range words {
			if tok == w {
				return true
			}
		}
		return false
	}
}

func prefixed(prefixes ...string) func(string) bool {
	return func(tok string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(tok, p) {
				return true
			}
		}
		return false
	}
}

func valueAfter(tok string) string {
	if i := strings.Index(tok, "="); i >= 0 {
		return tok[i+1:]
	}
	return ""
}

var tokenRules = []tokenRule{
	{prefixed("res="), func(tok string, s *Settings) {
		s.Resolution = valueAfter(tok)
	}},
	{literal("composite", "c"), func(_ string, s *Settings) {
		s.Composite = true
	}},
	{prefixed("depth=", "d="), func(tok string, s *Settings) {
		if n, err := strconv.Atoi(valueAfter(tok)); err == nil {
			s.Depth = n
		}
	}},
	// Handled by the pre-pass in Parse; kept here so they do not fall
	// through to the driver-name rule.
	{literal("safe", "default"), func(_ string, _ *Settings) {}},
	{literal("vbox"), func(_ string, s *Settings) {
		s.Driver = "vesa"
		s.HorizSync = "28-70"
		s.Resolution = "1280x1024"
	}},
	{prefixed("h="), func(tok string, s *Settings) {
		s.HorizSync = valueAfter(tok)
	}},
	{prefixed("v="), func(tok string, s *Settings) {
		s.VertRefresh = valueAfter(tok)
	}},
	{literal("auto"), func(_ string, s *Settings) {
		s.Resolution = ResolutionDefault
	}},
	{literal("uxa", "sna"), func(tok string, s *Settings) {
		s.AccelMethod = tok
		s.Driver = "intel"
	}},
	{func(tok string) bool { return resolutionRe.MatchString(tok) },
		func(tok string, s *Settings) { s.Resolution = tok }},
	// Anything else is taken as a driver name. Whether it is actually
	// installed is the inventory's problem, not the parser's.
	{func(string) bool { return true }, func(tok string, s *Settings) {
		s.Driver = tok
	}},
}

// Parse turns a comma-delimited option string like "fbdev,1600x900,composite"
// into a Settings record.
//
// The `default` and `safe` tokens are applied in a pre-pass regardless of
// where they appear, so an explicit driver or resolution token always
// overrides them. Both currently select the same default driver; `safe`
// additionally leaves the "safe" resolution sentinel so the framebuffer
// probe is consulted.
func Parse(opts string, defaults Defaults) Settings {
	var s Settings

	tokens := splitTokens(opts)

	for _, tok := range tokens {
		if tok == "default" {
			s.Driver = defaults.Driver
			s.Resolution = ResolutionDefault
		}
	}
	for _, tok := range tokens {
		if tok == "safe" {
			s.Driver = defaults.Driver
			s.Resolution = ResolutionSafe
		}
	}

	for _, tok := range tokens {
		for _, rule := range tokenRules {
			if rule.match(tok) {
				rule.apply(tok, &s)
				break
			}
		}
	}

	return s
}

func splitTokens(opts string) []string {
	var tokens []string
	for _, tok := range strings.Split(opts, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
