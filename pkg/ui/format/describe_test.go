package format_test

import (
	"testing"

	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/generator"
	"github.com/arthur-debert/droplink/pkg/linker"
	"github.com/arthur-debert/droplink/pkg/ui/format"
	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name    string
		outcome linker.Outcome
		dryRun  bool
		want    string
	}{
		{
			name:    "linked",
			outcome: linker.Outcome{Status: linker.StatusLinked, Link: "/h/.vimrc", Target: "/h/Dropbox/.vimrc"},
			want:    "linked /h/.vimrc -> /h/Dropbox/.vimrc",
		},
		{
			name:    "linked dry run",
			outcome: linker.Outcome{Status: linker.StatusLinked, Link: "/h/.vimrc", Target: "/h/Dropbox/.vimrc"},
			dryRun:  true,
			want:    "would link /h/.vimrc -> /h/Dropbox/.vimrc",
		},
		{
			name: "backed up",
			outcome: linker.Outcome{
				Status: linker.StatusBackedUp,
				Link:   "/h/.bashrc",
				Target: "/h/Dropbox/.bashrc",
				Backup: "/h/.bashrc.conf_bak",
			},
			want: "backed up and linked /h/.bashrc -> /h/Dropbox/.bashrc (previous saved as /h/.bashrc.conf_bak)",
		},
		{
			name:    "skipped without link",
			outcome: linker.Outcome{Status: linker.StatusSkipped, Target: "/h/Dropbox/notes.txt", Reason: "no link path"},
			want:    "skipped /h/Dropbox/notes.txt: no link path",
		},
		{
			name: "error",
			outcome: linker.Outcome{
				Line:   4,
				Status: linker.StatusError,
				Raw:    "garbage",
				Err:    errors.New(errors.ErrMalformedLine, "not a mapping"),
			},
			want: "line 4: error garbage: [MALFORMED_LINE] not a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Line(tt.outcome, tt.dryRun))
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		statuses []linker.Status
		dryRun   bool
		want     string
	}{
		{
			name: "nothing",
			want: "Nothing to do.",
		},
		{
			name:     "ignored only",
			statuses: []linker.Status{linker.StatusIgnored, linker.StatusIgnored},
			want:     "Nothing to do.",
		},
		{
			name:     "single link",
			statuses: []linker.Status{linker.StatusLinked},
			want:     "1 link created.",
		},
		{
			name: "mixed",
			statuses: []linker.Status{
				linker.StatusLinked, linker.StatusBackedUp, linker.StatusSkipped,
				linker.StatusSkipped, linker.StatusError,
			},
			want: "2 links created, 1 backup made, 2 entries skipped, and 1 error.",
		},
		{
			name:     "dry run",
			statuses: []linker.Status{linker.StatusBackedUp},
			dryRun:   true,
			want:     "1 link to create and 1 backup to make.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &linker.Report{DryRun: tt.dryRun}
			for _, s := range tt.statuses {
				report.Outcomes = append(report.Outcomes, linker.Outcome{Status: s})
			}
			assert.Equal(t, tt.want, format.Summary(report))
		})
	}
}

func TestGeneratedSummary(t *testing.T) {
	result := &generator.Result{
		MappingFile: "/c/links.conf",
		Entries: []generator.Entry{
			{Link: "~/.vimrc"},
			{},
		},
	}
	assert.Equal(t, "Wrote 2 entries to /c/links.conf (1 with a suggested link).", format.GeneratedSummary(result))
}
