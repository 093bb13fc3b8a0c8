// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/droplink/pkg/generator"
	"github.com/arthur-debert/droplink/pkg/linker"
	"github.com/arthur-debert/droplink/pkg/ui/format"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderReport prints one line per actionable outcome followed by a summary
func (r *Renderer) RenderReport(report *linker.Report) error {
	if report.DryRun {
		if _, err := fmt.Fprintln(r.output, "Dry run: no changes were made"); err != nil {
			return err
		}
	}
	for _, o := range report.Actionable() {
		if _, err := fmt.Fprintln(r.output, format.Line(o, report.DryRun)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.output, format.Summary(report))
	return err
}

// RenderGenerated prints where the mapping file was written
func (r *Renderer) RenderGenerated(result *generator.Result) error {
	_, err := fmt.Fprintln(r.output, format.GeneratedSummary(result))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
