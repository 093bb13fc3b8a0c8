// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/droplink/pkg/generator"
	"github.com/arthur-debert/droplink/pkg/linker"
	"github.com/arthur-debert/droplink/pkg/ui/format"
	"github.com/arthur-debert/droplink/pkg/ui/styles"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

var statusStyles = map[linker.Status]string{
	linker.StatusLinked:   "Success",
	linker.StatusBackedUp: "Backup",
	linker.StatusSkipped:  "Skipped",
	linker.StatusError:    "Error",
}

// RenderReport prints one coloured line per actionable outcome and a summary
func (r *Renderer) RenderReport(report *linker.Report) error {
	if report.DryRun {
		if _, err := fmt.Fprintln(r.output, styles.Render("DryRunBanner", "Dry run: no changes were made")); err != nil {
			return err
		}
	}

	for _, o := range report.Actionable() {
		if _, err := fmt.Fprintln(r.output, r.line(o, report.DryRun)); err != nil {
			return err
		}
	}

	summaryStyle := "Summary"
	if report.HasErrors() {
		summaryStyle = "Error"
	}
	_, err := fmt.Fprintln(r.output, styles.Render(summaryStyle, format.Summary(report)))
	return err
}

func (r *Renderer) line(o linker.Outcome, dryRun bool) string {
	verb := styles.Render(statusStyles[o.Status], format.Verb(o, dryRun))
	subject := styles.Render("Path", format.Subject(o))

	prefix := ""
	if o.Status == linker.StatusError {
		prefix = styles.Render("Muted", fmt.Sprintf("line %d: ", o.Line))
	}

	detail := format.Detail(o)
	if detail == "" {
		return prefix + verb + " " + subject
	}
	return prefix + verb + " " + subject + " " + styles.Render("Muted", detail)
}

// RenderGenerated prints where the mapping file was written
func (r *Renderer) RenderGenerated(result *generator.Result) error {
	_, err := fmt.Fprintln(r.output, styles.Render("Header", format.GeneratedSummary(result)))
	return err
}

// RenderError renders an error with error styling
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintln(r.output, styles.Render("Error", "Error: "+err.Error()))
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
