package mapping

import (
	"strings"
)

// Separator splits a link path from its target
const Separator = "=>"

// CommentPrefix starts a comment line
const CommentPrefix = "#"

// Kind classifies a mapping file line
type Kind int

const (
	// Blank is an empty or whitespace-only line
	Blank Kind = iota
	// Comment is a line starting with #
	Comment
	// Mapping is a "link => target" line. Link may be empty.
	Mapping
	// Malformed is any other line
	Malformed
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Mapping:
		return "mapping"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Line is one parsed line of a mapping file. Link and Target are only set
// for Mapping lines and are not yet home-expanded.
type Line struct {
	Number int
	Raw    string
	Kind   Kind
	Link   string
	Target string
}

// IsNoop reports whether the line requires no action: blanks, comments and
// mappings without a link path.
func (l Line) IsNoop() bool {
	switch l.Kind {
	case Blank, Comment:
		return true
	case Mapping:
		return l.Link == ""
	default:
		return false
	}
}

// Parse classifies a single raw line
func Parse(raw string, number int) Line {
	line := Line{Number: number, Raw: raw}
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		line.Kind = Blank
		return line
	case strings.HasPrefix(trimmed, CommentPrefix):
		line.Kind = Comment
		return line
	}

	idx := strings.Index(trimmed, Separator)
	if idx < 0 {
		line.Kind = Malformed
		return line
	}

	link := strings.TrimSpace(trimmed[:idx])
	target := strings.TrimSpace(trimmed[idx+len(Separator):])
	if target == "" {
		line.Kind = Malformed
		return line
	}

	line.Kind = Mapping
	line.Link = link
	line.Target = target
	return line
}
