package xorg_test

import (
	"testing"

	"mkxorg/internal/xorg"

	"github.com/stretchr/testify/assert"
)

func TestModes_PrimaryFirst(t *testing.T) {
	tests := []struct {
		name    string
		primary string
	}{
		{"Known", "1600x900"},
		{"Unknown", "1111x999"},
		{"GenericFallbackMember", "1024x768"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modes := xorg.Modes(tt.primary)
			assert.Equal(t, tt.primary, modes[0])
		})
	}
}

func TestModes_NoDuplicatePrimary(t *testing.T) {
	// 1024x768 appears in the generic fallback list; it must not show up
	// twice when it is also the primary.
	modes := xorg.Modes("1024x768")
	seen := 0
	for _, m := range modes {
		if m == "1024x768" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

func TestModes_UnknownGetsGenericFallbacks(t *testing.T) {
	modes := xorg.Modes("2560x1440")
	assert.Equal(t, []string{"2560x1440", "1024x768", "800x600", "640x480"}, modes)
}

func TestModeLine(t *testing.T) {
	line := xorg.ModeLine("800x600")
	assert.Equal(t, `"800x600" "640x480"`, line)
}
