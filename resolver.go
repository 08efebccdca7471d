package yamlinc

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Resolver loads the files named by include tags. One resolver instance is
// created per Register call and bound to a tag for the lifetime of the
// process.
//
// BaseDir and Encoding may be mutated between parses, but are not
// synchronized: mutating them while another goroutine parses through the
// same binding is a data race the caller must avoid.
type Resolver struct {
	// BaseDir, when set, is prefixed onto relative include paths. Absolute
	// paths ignore it.
	BaseDir string

	// Encoding is the default character encoding for included files. Empty
	// means DefaultEncoding.
	Encoding string

	logger *slog.Logger
}

// NewResolver creates a resolver with the given options applied.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Construct is the Constructor bound to the include tag. It normalizes the
// node's arguments and loads the requested file(s).
func (r *Resolver) Construct(l *Loader, node *yaml.Node) (any, error) {
	req, err := parseRequest(node)
	if err != nil {
		return nil, err
	}
	return r.load(l, req)
}

// load resolves one include request: variable substitution, encoding
// defaulting, base-dir join, then wildcard expansion or a direct file load.
// A wildcard pattern yields a sequence of values (empty when nothing
// matches); a plain pathname yields the single file's value and fails hard
// when the file cannot be read.
func (r *Resolver) load(l *Loader, req includeRequest) (any, error) {
	pathname := substituteVariables(req.pathname, r.logger)

	encoding := req.encoding
	if encoding == "" {
		encoding = r.Encoding
	}
	if encoding == "" {
		encoding = DefaultEncoding
	}

	if r.BaseDir != "" && !filepath.IsAbs(pathname) {
		pathname = filepath.Join(r.BaseDir, pathname)
	}

	if !hasWildcard(pathname) {
		return r.loadFile(l, pathname, encoding)
	}

	matches, err := expandPattern(pathname, req.recursive)
	if err != nil {
		return nil, err
	}
	results := make([]any, 0, len(matches))
	for _, path := range matches {
		value, err := r.loadFile(l, path, encoding)
		if err != nil {
			return nil, err
		}
		results = append(results, value)
	}
	return results, nil
}

// loadFile materializes one resolved path: .yaml/.yml files re-enter the
// same loader (nested includes resolve transitively), anything else is
// returned as its text content.
func (r *Resolver) loadFile(l *Loader, path, encoding string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to include %q: %w", path, err)
	}
	text, err := decodeText(data, encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to include %q: %w", path, err)
	}

	if isYAMLFile(path) {
		value, err := l.Load(text)
		if err != nil {
			return nil, fmt.Errorf("failed to include %q: %w", path, err)
		}
		return value, nil
	}
	return string(text), nil
}

// isYAMLFile reports whether path names a YAML document by extension,
// case-insensitively.
func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
