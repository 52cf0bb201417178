package b2yaml

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	b2 "github.com/ByteArena/box2d-builder"
	"github.com/rs/zerolog"
)

// Body is a loaded document together with the body definition built from it.
type Body struct {
	Path string
	Doc  *Document
	Def  *b2.B2BodyDef
}

type Loader struct {
	log zerolog.Logger
}

func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log.With().Str("component", "b2yaml").Logger()}
}

// IsDocument reports whether path has a YAML extension.
func IsDocument(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// LoadFile decodes and builds one document. A document without a name is
// named after its file.
func (l *Loader) LoadFile(path string) (*Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("b2yaml: load %s: %w", path, err)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("b2yaml: load %s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	def, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("b2yaml: load %s: %w", path, err)
	}

	l.log.Debug().
		Str("path", path).
		Str("name", doc.Name).
		Int("fixtures", len(def.Fixtures)).
		Msg("Loaded body document")

	return &Body{Path: path, Doc: doc, Def: def}, nil
}

// LoadDir loads every YAML document directly inside dir, sorted by file
// name. It stops at the first document that fails.
func (l *Loader) LoadDir(dir string) ([]*Body, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("b2yaml: load %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsDocument(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	bodies := make([]*Body, 0, len(paths))
	for _, path := range paths {
		body, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}

	l.log.Info().Str("dir", dir).Int("bodies", len(bodies)).Msg("Loaded body documents")
	return bodies, nil
}

// Load loads a single file or every document of a directory.
func (l *Loader) Load(path string) ([]*Body, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("b2yaml: load %s: %w", path, err)
	}
	if info.IsDir() {
		return l.LoadDir(path)
	}

	body, err := l.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return []*Body{body}, nil
}
