package linker

import (
	"github.com/arthur-debert/droplink/pkg/mapping"
)

// Status is the outcome of a single mapping file line
type Status string

const (
	// StatusIgnored is a blank or comment line
	StatusIgnored Status = "ignored"
	// StatusLinked means a new link was created without a backup
	StatusLinked Status = "linked"
	// StatusBackedUp means an existing entry was backed up and a link created
	StatusBackedUp Status = "backed-up"
	// StatusSkipped means the line required, or allowed, no change
	StatusSkipped Status = "skipped"
	// StatusError means the line could not be applied
	StatusError Status = "error"
)

// Outcome records what happened to one line
type Outcome struct {
	Line   int
	Raw    string
	Kind   mapping.Kind
	Status Status
	Site   SiteState
	Link   string
	Target string
	Backup string
	Reason string
	Err    error
}

// Report aggregates the outcomes of a processing run in file order
type Report struct {
	MappingFile string
	DryRun      bool
	Outcomes    []Outcome
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Count returns the number of outcomes with the given status
func (r *Report) Count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Errors returns the failed outcomes
func (r *Report) Errors() []Outcome {
	var errs []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusError {
			errs = append(errs, o)
		}
	}
	return errs
}

// HasErrors reports whether any line failed
func (r *Report) HasErrors() bool {
	return r.Count(StatusError) > 0
}

// Actionable returns every outcome except ignored lines
func (r *Report) Actionable() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status != StatusIgnored {
			out = append(out, o)
		}
	}
	return out
}
