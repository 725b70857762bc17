// Package schema validates JSON request bodies against the embedded schemas.
package schema

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/qri-io/jsonschema"
)

// Names of the embedded schemas.
const (
	CreateQuestion  = "create_question"
	SearchQuestions = "search_questions"
	Quiz            = "quiz"
)

//go:embed schemas/*.json
var embedded embed.FS

// ValidationError lists the schema violations of a document.
type ValidationError struct {
	Schema string
	Errors []jsonschema.KeyError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ke := range e.Errors {
		msgs = append(msgs, ke.PropertyPath+": "+ke.Message)
	}
	return fmt.Sprintf("%s: %s", e.Schema, strings.Join(msgs, "; "))
}

// Loader loads and caches compiled JSON schemas.
type Loader struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// NewLoader compiles the embedded schemas.
func NewLoader() (*Loader, error) {
	return NewLoaderFS(embedded, "schemas")
}

// NewLoaderFS compiles every *.json file of dir; the schema name is the file
// name without extension.
func NewLoaderFS(fsys fs.FS, dir string) (*Loader, error) {
	l := &Loader{cache: make(map[string]*jsonschema.Schema)}
	if err := l.Reload(fsys, dir); err != nil {
		return nil, err
	}

	return l, nil
}

// GetSchema returns a compiled schema by name.
func (l *Loader) GetSchema(name string) (*jsonschema.Schema, bool) {
	l.mu.RLock()
	s, ok := l.cache[name]
	l.mu.RUnlock()

	return s, ok
}

// Names lists the loaded schema names in order.
func (l *Loader) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.cache))
	for n := range l.cache {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Reload compiles all schemas of dir and swaps them in.
func (l *Loader) Reload(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read schemas: %w", err)
	}

	newCache := make(map[string]*jsonschema.Schema)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		b, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("read schema %s: %w", e.Name(), err)
		}
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(b, rs); err != nil {
			return fmt.Errorf("compile schema %s: %w", e.Name(), err)
		}

		newCache[strings.TrimSuffix(e.Name(), ".json")] = rs
	}

	l.mu.Lock()
	l.cache = newCache
	l.mu.Unlock()
	return nil
}

// Validate checks data against the named schema. Schema violations are
// returned as *ValidationError.
func (l *Loader) Validate(ctx context.Context, name string, data []byte) error {
	rs, ok := l.GetSchema(name)
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	kerrs, err := rs.ValidateBytes(ctx, data)
	if err != nil {
		return &ValidationError{Schema: name, Errors: []jsonschema.KeyError{{PropertyPath: "/", Message: err.Error()}}}
	}
	if len(kerrs) > 0 {
		return &ValidationError{Schema: name, Errors: kerrs}
	}
	return nil
}
