package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-trainer/internal/domain/entities"
	"github.com/aliskhannn/vocab-trainer/internal/vocab"
)

// Provider kinds.
const (
	ProviderSingleFile = "singlefile"
	ProviderMultiFile  = "multifile"
)

var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrNoSources       = errors.New("no vocabulary files configured")
)

// ProviderNames lists the available providers.
var ProviderNames = []string{ProviderSingleFile, ProviderMultiFile}

// Vocabulary is everything a provider loaded, including what it had to reject.
type Vocabulary struct {
	Lang1    entities.LanguageName
	Lang2    entities.LanguageName
	Entries  []*entities.VocabEntry // valid entries from all sources, in source order
	Sources  []string               // sources that contributed entries
	Problems []*vocab.ParseError    // rejected lines across all sources
	Failed   []error                // sources that could not be used at all
}

// Provider loads vocabulary entries.
type Provider interface {
	Name() string
	Load(ctx context.Context) (*Vocabulary, error)
}

// ProviderOptions configures NewProvider.
type ProviderOptions struct {
	FilePath  string   // singlefile
	FilePaths []string // multifile
	Lang1     entities.LanguageName
	Lang2     entities.LanguageName
}

// NewProvider builds the provider registered under kind.
func NewProvider(kind string, opts ProviderOptions, logger *zap.Logger) (Provider, error) {
	switch kind {
	case ProviderSingleFile:
		return NewSingleFileProvider(opts, logger), nil
	case ProviderMultiFile:
		return NewMultiFileProvider(opts, logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, kind)
	}
}

type fileSet struct {
	lang1  entities.LanguageName
	lang2  entities.LanguageName
	logger *zap.Logger
}

func newFileSet(kind string, opts ProviderOptions, logger *zap.Logger) fileSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return fileSet{
		lang1:  opts.Lang1,
		lang2:  opts.Lang2,
		logger: logger.With(zap.String("provider", kind)),
	}
}

// load reads every path. A path that cannot be read or yields no entries is
// recorded in Failed and the rest are still loaded.
func (f fileSet) load(ctx context.Context, paths []string) *Vocabulary {
	v := &Vocabulary{Lang1: f.lang1, Lang2: f.lang2}

	for _, path := range paths {
		if ctx.Err() != nil {
			v.Failed = append(v.Failed, ctx.Err())
			return v
		}

		src, err := vocab.LoadFile(path)
		if src != nil {
			v.Problems = append(v.Problems, src.Errors...)
			for _, perr := range src.Errors {
				f.logger.Warn("skipped invalid line",
					zap.String("source", perr.File),
					zap.Int("line", perr.Line),
					zap.String("reason", perr.Reason),
				)
			}
		}
		if err != nil {
			f.logger.Warn("source rejected", zap.String("source", path), zap.Error(err))
			v.Failed = append(v.Failed, err)
			continue
		}

		v.Entries = append(v.Entries, src.Entries...)
		v.Sources = append(v.Sources, path)
		f.logger.Debug("source loaded",
			zap.String("source", path),
			zap.Int("entries", len(src.Entries)),
			zap.Int("skipped", src.Skipped),
		)
	}

	return v
}

// SingleFileProvider loads one vocabulary file. The file can be switched to
// another one in the same directory tree.
type SingleFileProvider struct {
	fileSet
	path string
}

// NewSingleFileProvider creates a provider for opts.FilePath.
func NewSingleFileProvider(opts ProviderOptions, logger *zap.Logger) *SingleFileProvider {
	return &SingleFileProvider{
		fileSet: newFileSet(ProviderSingleFile, opts, logger),
		path:    opts.FilePath,
	}
}

func (p *SingleFileProvider) Name() string {
	return ProviderSingleFile
}

// Path returns the selected file.
func (p *SingleFileProvider) Path() string {
	return p.path
}

// Select switches to another file.
func (p *SingleFileProvider) Select(path string) {
	p.path = path
}

// Load reads the selected file. When it yields no entries the returned
// Vocabulary still carries the rejected lines.
func (p *SingleFileProvider) Load(ctx context.Context) (*Vocabulary, error) {
	if p.path == "" {
		return nil, ErrNoSources
	}

	v := p.load(ctx, []string{p.path})
	if len(v.Failed) > 0 {
		return v, v.Failed[0]
	}
	return v, nil
}

// Siblings lists files next to the selected one, or below its directory, that
// share its extension and contain filter. Paths are returned sorted and
// joined with the directory so they can be passed to Select.
func (p *SingleFileProvider) Siblings(filter string) ([]string, error) {
	if p.path == "" {
		return nil, ErrNoSources
	}

	dir := filepath.Dir(p.path)
	ext := filepath.Ext(p.path)

	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ext {
			return nil
		}
		if filter != "" && !strings.Contains(d.Name(), filter) {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	sort.Strings(out)
	return out, nil
}

// MultiFileProvider merges several vocabulary files in the configured order.
type MultiFileProvider struct {
	fileSet
	paths []string
}

// NewMultiFileProvider creates a provider over opts.FilePaths.
func NewMultiFileProvider(opts ProviderOptions, logger *zap.Logger) *MultiFileProvider {
	return &MultiFileProvider{
		fileSet: newFileSet(ProviderMultiFile, opts, logger),
		paths:   append([]string(nil), opts.FilePaths...),
	}
}

func (p *MultiFileProvider) Name() string {
	return ProviderMultiFile
}

// Load reads every file. It fails only when no file contributed an entry.
func (p *MultiFileProvider) Load(ctx context.Context) (*Vocabulary, error) {
	if len(p.paths) == 0 {
		return nil, ErrNoSources
	}

	v := p.load(ctx, p.paths)
	if len(v.Entries) == 0 {
		return v, fmt.Errorf("%w: %w", vocab.ErrNoValidEntries, errors.Join(v.Failed...))
	}
	return v, nil
}
