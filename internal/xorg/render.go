package xorg

import (
	"fmt"
	"strings"
	"time"
)

// Meta carries the provenance information echoed into the header comment.
type Meta struct {
	Program     string
	Version     string
	GeneratedAt time.Time
	CommandLine string
}

// Render produces the full configuration document for s. It is a pure
// function of its inputs; writing the result anywhere is the caller's job.
//
// Section order is fixed: header comment, Monitor, Device, Extensions
// (only when compositing is enabled), Screen. Unset fields are omitted
// from their sections.
func Render(s Settings, meta Meta) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# xorg.conf generated by %s %s\n", meta.Program, meta.Version)
	fmt.Fprintf(&b, "# %s\n", meta.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "# command line: %s\n\n", meta.CommandLine)

	b.WriteString("Section \"Monitor\"\n")
	b.WriteString("\tIdentifier \"Monitor0\"\n")
	if s.HorizSync != "" {
		fmt.Fprintf(&b, "\tHorizSync %s\n", s.HorizSync)
	}
	if s.VertRefresh != "" {
		fmt.Fprintf(&b, "\tVertRefresh %s\n", s.VertRefresh)
	}
	b.WriteString("EndSection\n\n")

	b.WriteString("Section \"Device\"\n")
	b.WriteString("\tIdentifier \"Device0\"\n")
	if s.FallbackFrom != "" {
		fmt.Fprintf(&b, "\t# The requested %q driver is not installed.\n", s.FallbackFrom)
		fmt.Fprintf(&b, "\t# The %q driver was substituted. Install the %s driver\n",
			s.Driver, s.FallbackFrom)
		b.WriteString("\t# and regenerate, or rerun with --force to keep it anyway.\n")
	}
	fmt.Fprintf(&b, "\tDriver \"%s\"\n", s.Driver)
	if s.AccelMethod != "" {
		fmt.Fprintf(&b, "\tOption \"AccelMethod\" \"%s\"\n", s.AccelMethod)
	}
	b.WriteString("EndSection\n\n")

	if s.Composite {
		b.WriteString("Section \"Extensions\"\n")
		b.WriteString("\tOption \"Composite\" \"Enable\"\n")
		b.WriteString("EndSection\n\n")
	}

	b.WriteString("Section \"Screen\"\n")
	b.WriteString("\tIdentifier \"Screen0\"\n")
	b.WriteString("\tDevice \"Device0\"\n")
	b.WriteString("\tMonitor \"Monitor0\"\n")
	if s.Depth != 0 {
		fmt.Fprintf(&b, "\tDefaultDepth %d\n", s.Depth)
	}
	if s.Resolution != "" {
		b.WriteString("\tSubSection \"Display\"\n")
		if s.Depth != 0 {
			fmt.Fprintf(&b, "\t\tDepth %d\n", s.Depth)
		}
		fmt.Fprintf(&b, "\t\tModes %s\n", ModeLine(s.Resolution))
		b.WriteString("\tEndSubSection\n")
	}
	b.WriteString("EndSection\n")

	return b.String()
}
