package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter loads translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FSAdapter loads every file of a directory in an fs.FS that parser supports
// and merges them. Later files override keys of earlier ones.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewEmbeddedFsAdapter reads translations from dir inside an embedded
// filesystem. Any fs.FS works, which keeps tests free of real files.
func NewEmbeddedFsAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirectoryAdapter reads translations from a directory on disk.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	if parser == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: os.DirFS(dir), dir: "."}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrParsingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", name, err))
		}
		parsed, err := a.parser.Parse(ctx, string(content))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		for lang, entries := range parsed {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(entries))
			}
			maps.Copy(all[lang], entries)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return all, nil
}

// FileAdapter loads a single translation file from disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil when parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if !a.parser.SupportsFileExtension(filepath.Ext(a.path)) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, a.path)
	}
	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", a.path, err))
	}
	parsed, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.path, err)
	}
	return parsed, nil
}
