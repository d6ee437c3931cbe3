package api

import (
	"fmt"
	"strings"
)

// Format is the edition of a book, sent on the wire as a short code.
type Format string

const (
	FormatKindle   Format = "AK"
	FormatPhysical Format = "F"
)

// Formats lists the selectable formats in display order.
var Formats = []Format{FormatKindle, FormatPhysical}

// Label returns the human-readable name. Unknown codes are returned as-is.
func (f Format) Label() string {
	switch f {
	case FormatKindle:
		return "Amazon Kindle"
	case FormatPhysical:
		return "Physical"
	default:
		return string(f)
	}
}

// Valid reports whether f is one of Formats.
func (f Format) Valid() bool {
	return f == FormatKindle || f == FormatPhysical
}

// ParseFormat accepts a wire code, a label or a short alias, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ak", "kindle", "amazon kindle":
		return FormatKindle, nil
	case "f", "physical":
		return FormatPhysical, nil
	}
	return "", fmt.Errorf("unknown format %q (use %q or %q)", s, FormatKindle.Label(), FormatPhysical.Label())
}
