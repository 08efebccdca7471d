package yamlinc

import (
	"fmt"
	"log/slog"
	"strings"
)

// Option configures a resolver created by Register or NewResolver.
type Option func(*Resolver)

// WithBaseDir sets the base directory prefixed onto relative include paths.
func WithBaseDir(dir string) Option {
	return func(r *Resolver) {
		r.BaseDir = dir
	}
}

// WithEncoding sets the default character encoding for included files.
func WithEncoding(name string) Option {
	return func(r *Resolver) {
		r.Encoding = name
	}
}

// WithLogger sets the logger used for include diagnostics, such as
// unresolved ${name} variables. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// Register creates a resolver and binds it to tag for the given loader
// class. An empty class means DefaultClass; an empty (or blank) tag means
// DefaultTagName. A non-empty tag must start with '!', otherwise
// ErrInvalidTag is returned before anything is bound.
//
// The binding is process-wide: every subsequent parse through a Loader of
// that class honors the tag until re-registration. The returned resolver may
// be mutated (BaseDir, Encoding) between parses.
func Register(class Class, tag string, opts ...Option) (*Resolver, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		tag = DefaultTagName
	}
	if !strings.HasPrefix(tag, "!") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}

	r := NewResolver(opts...)
	AddConstructor(class, tag, r.Construct)
	return r, nil
}
