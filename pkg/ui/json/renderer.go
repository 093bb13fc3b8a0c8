// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/generator"
	"github.com/arthur-debert/droplink/pkg/linker"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

type outcomeJSON struct {
	Line      int    `json:"line"`
	Status    string `json:"status"`
	Site      string `json:"site,omitempty"`
	Link      string `json:"link,omitempty"`
	Target    string `json:"target,omitempty"`
	Backup    string `json:"backup,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
}

type reportJSON struct {
	MappingFile string         `json:"mappingFile"`
	DryRun      bool           `json:"dryRun"`
	Counts      map[string]int `json:"counts"`
	Outcomes    []outcomeJSON  `json:"outcomes"`
}

// RenderReport encodes the actionable outcomes and counts
func (r *Renderer) RenderReport(report *linker.Report) error {
	out := reportJSON{
		MappingFile: report.MappingFile,
		DryRun:      report.DryRun,
		Counts:      map[string]int{},
		Outcomes:    []outcomeJSON{},
	}
	for _, s := range []linker.Status{
		linker.StatusLinked, linker.StatusBackedUp, linker.StatusSkipped, linker.StatusError,
	} {
		out.Counts[string(s)] = report.Count(s)
	}

	for _, o := range report.Actionable() {
		entry := outcomeJSON{
			Line:   o.Line,
			Status: string(o.Status),
			Link:   o.Link,
			Target: o.Target,
			Backup: o.Backup,
			Reason: o.Reason,
		}
		if o.Site != linker.Unknown {
			entry.Site = o.Site.String()
		}
		if o.Err != nil {
			entry.Error = o.Err.Error()
			entry.ErrorCode = string(errors.GetErrorCode(o.Err))
		}
		out.Outcomes = append(out.Outcomes, entry)
	}

	return r.encoder.Encode(out)
}

// RenderGenerated encodes the generated entries
func (r *Renderer) RenderGenerated(result *generator.Result) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
