// Package format turns droplink results into human readable sentences shared
// by the text and terminal renderers.
package format

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/droplink/pkg/generator"
	"github.com/arthur-debert/droplink/pkg/linker"
	"github.com/dustin/go-humanize/english"
)

// Verb returns the leading word for an outcome, e.g. "linked" or "would link"
func Verb(o linker.Outcome, dryRun bool) string {
	switch o.Status {
	case linker.StatusLinked:
		if dryRun {
			return "would link"
		}
		return "linked"
	case linker.StatusBackedUp:
		if dryRun {
			return "would back up and link"
		}
		return "backed up and linked"
	case linker.StatusSkipped:
		return "skipped"
	case linker.StatusError:
		return "error"
	default:
		return string(o.Status)
	}
}

// Subject returns the path an outcome is about
func Subject(o linker.Outcome) string {
	if o.Link != "" {
		return o.Link
	}
	if o.Target != "" {
		return o.Target
	}
	return o.Raw
}

// Detail returns the trailing explanation for an outcome, or ""
func Detail(o linker.Outcome) string {
	switch o.Status {
	case linker.StatusLinked:
		return "-> " + o.Target
	case linker.StatusBackedUp:
		return fmt.Sprintf("-> %s (previous saved as %s)", o.Target, o.Backup)
	case linker.StatusSkipped:
		return o.Reason
	case linker.StatusError:
		if o.Err != nil {
			return o.Err.Error()
		}
	}
	return ""
}

// Line renders one outcome as plain text
func Line(o linker.Outcome, dryRun bool) string {
	var b strings.Builder
	if o.Status == linker.StatusError {
		fmt.Fprintf(&b, "line %d: ", o.Line)
	}
	b.WriteString(Verb(o, dryRun))
	b.WriteString(" ")
	b.WriteString(Subject(o))
	if detail := Detail(o); detail != "" {
		if o.Status == linker.StatusSkipped || o.Status == linker.StatusError {
			b.WriteString(": ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(detail)
	}
	return b.String()
}

// Summary renders the counts of a report as one sentence
func Summary(r *linker.Report) string {
	linked := r.Count(linker.StatusLinked) + r.Count(linker.StatusBackedUp)
	backedUp := r.Count(linker.StatusBackedUp)
	skipped := r.Count(linker.StatusSkipped)
	failed := r.Count(linker.StatusError)

	created := "created"
	made := "made"
	if r.DryRun {
		created = "to create"
		made = "to make"
	}

	var parts []string
	if linked > 0 {
		parts = append(parts, english.Plural(linked, "link", "")+" "+created)
	}
	if backedUp > 0 {
		parts = append(parts, english.Plural(backedUp, "backup", "")+" "+made)
	}
	if skipped > 0 {
		parts = append(parts, english.Plural(skipped, "entry", "entries")+" skipped")
	}
	if failed > 0 {
		parts = append(parts, english.Plural(failed, "error", ""))
	}
	if len(parts) == 0 {
		return "Nothing to do."
	}
	return capitalize(english.OxfordWordSeries(parts, "and")) + "."
}

// GeneratedSummary describes a freshly generated mapping file
func GeneratedSummary(r *generator.Result) string {
	return fmt.Sprintf("Wrote %s to %s (%d with a suggested link).",
		english.Plural(len(r.Entries), "entry", "entries"), r.MappingFile, r.Suggested())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
