package linker

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/droplink/pkg/config"
	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/filesystem"
	"github.com/arthur-debert/droplink/pkg/logging"
	"github.com/arthur-debert/droplink/pkg/mapping"
	"github.com/arthur-debert/droplink/pkg/paths"
	"github.com/rs/zerolog"
)

// Options controls a processing run
type Options struct {
	// DryRun classifies every entry and reports what would happen without
	// touching the filesystem.
	DryRun bool
}

// Processor applies mapping files to the filesystem
type Processor struct {
	fs           filesystem.FS
	home         string
	backupSuffix string
	opts         Options
	logger       zerolog.Logger
}

// New creates a Processor using the home directory and backup suffix from settings
func New(fs filesystem.FS, settings config.Settings, opts Options) *Processor {
	return &Processor{
		fs:           fs,
		home:         settings.HomeDir,
		backupSuffix: settings.BackupSuffix,
		opts:         opts,
		logger:       logging.GetLogger("linker"),
	}
}

// Process reads the mapping file at path line by line and applies each
// mapping. The returned error is only non-nil when the run could not happen
// at all; per-line failures are in the Report.
func (p *Processor) Process(path string) (*Report, error) {
	if path == "" {
		return nil, errors.New(errors.ErrInvalidArgument, "mapping file path is empty")
	}

	done := logging.LogOperationStart(p.logger, "process")
	defer done()

	f, err := p.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot open mapping file %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	report := &Report{MappingFile: path, DryRun: p.opts.DryRun}
	scanner := mapping.NewScanner(f)
	for scanner.Scan() {
		outcome := p.processLine(scanner.Line())
		p.logOutcome(outcome)
		report.add(outcome)
	}
	if err := scanner.Err(); err != nil {
		return report, errors.Wrapf(err, errors.ErrFileAccess, "failed reading mapping file %s", path)
	}

	p.logger.Info().
		Str("mappingFile", path).
		Int("linked", report.Count(StatusLinked)).
		Int("backedUp", report.Count(StatusBackedUp)).
		Int("skipped", report.Count(StatusSkipped)).
		Int("errors", report.Count(StatusError)).
		Bool("dryRun", p.opts.DryRun).
		Msg("Mapping file processed")

	return report, nil
}

func (p *Processor) processLine(line mapping.Line) Outcome {
	outcome := Outcome{Line: line.Number, Raw: line.Raw, Kind: line.Kind}

	if line.Kind == mapping.Malformed {
		outcome.Status = StatusError
		outcome.Err = errors.Newf(errors.ErrMalformedLine, "line %d is not a mapping: %q", line.Number, line.Raw)
		return outcome
	}

	if line.IsNoop() {
		if line.Kind != mapping.Mapping {
			outcome.Status = StatusIgnored
			return outcome
		}
		outcome.Status = StatusSkipped
		outcome.Target = p.resolve(line.Target)
		outcome.Reason = "no link path"
		return outcome
	}

	return p.apply(outcome, p.resolve(line.Link), p.resolve(line.Target))
}

// resolve expands `~` and makes the path absolute and clean
func (p *Processor) resolve(path string) string {
	path = paths.Expand(path, p.home)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func (p *Processor) apply(outcome Outcome, link, target string) Outcome {
	outcome.Link = link
	outcome.Target = target

	if _, err := p.fs.Stat(target); err != nil {
		outcome.Status = StatusError
		outcome.Err = errors.Wrapf(err, errors.ErrMissingTarget, "target %s does not exist", target).
			WithDetail("target", target)
		return outcome
	}

	if p.sameFile(link, target) {
		outcome.Status = StatusError
		outcome.Err = errors.Newf(errors.ErrSelfLink, "%s is the target file itself", link).
			WithDetail("link", link).
			WithDetail("target", target)
		return outcome
	}

	state, classifyErr := ClassifySite(p.fs, link, target)
	outcome.Site = state

	switch state.Transition() {
	case ActionSkip:
		outcome.Status = StatusSkipped
		if state == Directory {
			outcome.Reason = "link path is a directory"
			outcome.Err = errors.Newf(errors.ErrUnsupportedLinkSite,
				"%s is a directory, directories are not replaced", link).WithDetail("link", link)
		} else {
			outcome.Reason = "already linked"
		}
		return outcome

	case ActionFail:
		outcome.Status = StatusError
		if classifyErr != nil {
			outcome.Err = errors.Wrapf(classifyErr, errors.ErrUnclassifiableLinkSite,
				"cannot inspect %s", link)
		} else {
			outcome.Err = errors.Newf(errors.ErrUnclassifiableLinkSite,
				"%s exists but is neither a file, a directory nor a dangling link", link)
		}
		return outcome

	case ActionBackupAndLink:
		backup := link + p.backupSuffix
		if err := p.backup(link, backup); err != nil {
			outcome.Status = StatusError
			outcome.Err = err
			return outcome
		}
		outcome.Backup = backup
		outcome.Status = StatusBackedUp

	case ActionLink:
		outcome.Status = StatusLinked
	}

	if p.opts.DryRun {
		return outcome
	}

	if err := p.fs.Symlink(target, link); err != nil {
		outcome.Status = StatusError
		outcome.Err = errors.Wrapf(err, errors.ErrLinkCreationFailure, "cannot link %s to %s", link, target).
			WithDetail("link", link).
			WithDetail("target", target)
	}
	return outcome
}

// sameFile reports whether link is the target file itself rather than a
// symlink to it, either by path or through symlinked parent directories
func (p *Processor) sameFile(link, target string) bool {
	if link == target {
		return true
	}
	info, err := p.fs.Lstat(link)
	if err != nil || info.Mode()&os.ModeSymlink != 0 {
		return false
	}
	resolvedLink, err := p.fs.EvalSymlinks(link)
	if err != nil {
		return false
	}
	resolvedTarget, err := p.fs.EvalSymlinks(target)
	if err != nil {
		return false
	}
	return resolvedLink == resolvedTarget
}

// backup renames link to backup, refusing to overwrite an existing backup
func (p *Processor) backup(link, backup string) error {
	if _, err := p.fs.Lstat(backup); err == nil {
		return errors.Newf(errors.ErrBackupExists,
			"cannot back up %s: %s already exists", link, backup).
			WithDetail("link", link).
			WithDetail("backup", backup)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrBackupFailure, "cannot inspect %s", backup)
	}

	if p.opts.DryRun {
		return nil
	}

	if err := p.fs.Rename(link, backup); err != nil {
		return errors.Wrapf(err, errors.ErrBackupFailure, "cannot rename %s to %s", link, backup)
	}
	return nil
}

func (p *Processor) logOutcome(o Outcome) {
	if o.Status == StatusIgnored {
		return
	}
	event := p.logger.Debug()
	if o.Status == StatusError {
		event = p.logger.Warn().Err(o.Err)
	}
	event.
		Int("line", o.Line).
		Str("status", string(o.Status)).
		Str("site", o.Site.String()).
		Str("link", o.Link).
		Str("target", o.Target).
		Str("backup", o.Backup).
		Msg("Mapping line processed")
}
