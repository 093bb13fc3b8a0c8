package generator

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/droplink/pkg/config"
	"github.com/arthur-debert/droplink/pkg/errors"
	"github.com/arthur-debert/droplink/pkg/filesystem"
	"github.com/arthur-debert/droplink/pkg/logging"
	"github.com/arthur-debert/droplink/pkg/mapping"
	"github.com/arthur-debert/droplink/pkg/paths"
	"github.com/arthur-debert/droplink/pkg/rules"
	"github.com/rs/zerolog"
)

// Options controls generation
type Options struct {
	// NoSuggestions leaves every link side blank
	NoSuggestions bool
}

// Entry is one generated mapping line
type Entry struct {
	// Source is the absolute path of the file in the synchronized folder
	Source string `json:"source"`
	// Link is the suggested link path, empty when nothing was suggested
	Link string `json:"link"`
	// Target is Source in display form, with home contracted to `~`
	Target string `json:"target"`
}

// Result describes a generated mapping file
type Result struct {
	MappingFile string  `json:"mappingFile"`
	Entries     []Entry `json:"entries"`
	Ignored     int     `json:"ignored"`
}

// Suggested returns how many entries carry a link suggestion
func (r *Result) Suggested() int {
	n := 0
	for _, e := range r.Entries {
		if e.Link != "" {
			n++
		}
	}
	return n
}

// Generator scans a source folder and writes mapping files
type Generator struct {
	fs       filesystem.FS
	settings config.Settings
	opts     Options
	logger   zerolog.Logger
}

// New creates a Generator for the folder and mapping file named in settings
func New(fs filesystem.FS, settings config.Settings, opts Options) *Generator {
	return &Generator{
		fs:       fs,
		settings: settings,
		opts:     opts,
		logger:   logging.GetLogger("generator"),
	}
}

// Generate scans the source folder and overwrites the mapping file
func (g *Generator) Generate() (*Result, error) {
	sourceDir := g.settings.SourceDir
	mappingFile := g.settings.MappingFile
	if sourceDir == "" {
		return nil, errors.New(errors.ErrInvalidArgument, "source folder is not set")
	}
	if mappingFile == "" {
		return nil, errors.New(errors.ErrInvalidArgument, "mapping file path is not set")
	}

	done := logging.LogOperationStart(g.logger, "generate")
	defer done()

	info, err := g.fs.Stat(sourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read source folder %s", sourceDir).
			WithDetail("path", sourceDir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidArgument, "source folder %s is not a directory", sourceDir)
	}

	ruleset, err := rules.ForSource(g.fs, rules.FromSettings(g.settings), sourceDir)
	if err != nil {
		return nil, err
	}

	files, ignored, err := g.collect(sourceDir, ruleset)
	if err != nil {
		return nil, err
	}

	result := &Result{MappingFile: mappingFile, Ignored: ignored}
	for _, file := range files {
		entry := Entry{
			Source: file,
			Target: paths.Contract(file, g.settings.HomeDir),
		}
		if !g.opts.NoSuggestions {
			entry.Link = ruleset.Suggest(filepath.Base(file))
		}
		result.Entries = append(result.Entries, entry)
	}

	if err := g.write(mappingFile, result.Entries); err != nil {
		return nil, err
	}

	g.logger.Info().
		Str("mappingFile", mappingFile).
		Int("entries", len(result.Entries)).
		Int("suggested", result.Suggested()).
		Int("ignored", ignored).
		Msg("Mapping file generated")

	return result, nil
}

// collect returns the sorted absolute paths of all regular files under root
func (g *Generator) collect(root string, ruleset *rules.Ruleset) ([]string, int, error) {
	var files []string
	ignored := 0

	err := g.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if ruleset.Ignored(rel) {
			ignored++
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			g.logger.Trace().Str("path", path).Msg("Skipping non-regular file")
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, 0, errors.Wrapf(err, errors.ErrFileAccess, "failed to scan source folder %s", root)
	}

	sort.Strings(files)
	return files, ignored, nil
}

// write replaces the mapping file with the header and entries in one write
func (g *Generator) write(mappingFile string, entries []Entry) error {
	var b strings.Builder
	b.WriteString(mapping.Header)
	for _, e := range entries {
		b.WriteString(mapping.FormatEntry(e.Link, e.Target))
		b.WriteString("\n")
	}

	if err := g.fs.MkdirAll(filepath.Dir(mappingFile), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory for %s", mappingFile)
	}
	if err := g.fs.WriteFile(mappingFile, []byte(b.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write mapping file %s", mappingFile).
			WithDetail("path", mappingFile)
	}
	return nil
}

// Generate is a shorthand for New(fs, settings, opts).Generate()
func Generate(fs filesystem.FS, settings config.Settings, opts Options) (*Result, error) {
	return New(fs, settings, opts).Generate()
}
