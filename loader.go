package yamlinc

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.yaml.in/yaml/v4"
)

// Constructor converts a tagged node into a Go value. The loader is passed
// through so constructors can re-enter parsing with the same class and tag
// bindings.
type Constructor func(l *Loader, node *yaml.Node) (any, error)

// constructors is the process-wide tag binding table, keyed by loader class.
// Bindings live for the lifetime of the process; there is no teardown.
// Re-registering a tag replaces the previous binding.
var (
	constructorsMu sync.RWMutex
	constructors   = make(map[Class]map[string]Constructor)
)

// AddConstructor binds fn to tag for the given loader class. Every subsequent
// parse through a Loader of that class dispatches nodes carrying the tag to
// fn. An empty class means DefaultClass.
func AddConstructor(class Class, tag string, fn Constructor) {
	if class == "" {
		class = DefaultClass
	}
	constructorsMu.Lock()
	defer constructorsMu.Unlock()
	table, ok := constructors[class]
	if !ok {
		table = make(map[string]Constructor)
		constructors[class] = table
	}
	table[tag] = fn
}

func lookupConstructor(class Class, tag string) (Constructor, bool) {
	constructorsMu.RLock()
	defer constructorsMu.RUnlock()
	fn, ok := constructors[class][tag]
	return fn, ok
}

// Loader parses YAML documents and constructs Go values, dispatching
// registered tags to their constructors. Loaders are cheap; create one per
// class as needed.
type Loader struct {
	class Class
}

// NewLoader creates a loader for the given class. An empty class means
// DefaultClass.
func NewLoader(class Class) *Loader {
	if class == "" {
		class = DefaultClass
	}
	return &Loader{class: class}
}

// Class returns the loader class this loader dispatches tags for.
func (l *Loader) Class() Class {
	return l.class
}

// Load parses a YAML document and returns its constructed value. An empty
// document yields nil.
func (l *Loader) Load(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if root.Kind == 0 {
		return nil, nil
	}
	return l.construct(&root)
}

// LoadReader reads r to completion and parses the content as a YAML document.
func (l *Loader) LoadReader(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return l.Load(data)
}

// LoadFile reads and parses the YAML document at path.
func (l *Loader) LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return l.Load(data)
}

// construct recursively converts a node tree into Go values. Registered tags
// take precedence over the node's structural interpretation.
func (l *Loader) construct(node *yaml.Node) (any, error) {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		return l.construct(node.Content[0])
	}

	if fn, ok := lookupConstructor(l.class, node.Tag); ok {
		return fn(l, node)
	}

	if isLocalTag(node.Tag) && l.class == StrictClass {
		return nil, fmt.Errorf("line %d: no constructor registered for tag %s", node.Line, node.Tag)
	}

	switch node.Kind {
	case yaml.ScalarNode:
		if isLocalTag(node.Tag) {
			// Unregistered local tag: keep the scalar text as-is.
			return node.Value, nil
		}
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return value, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := l.construct(item)
			if err != nil {
				return nil, err
			}
			out = append(out, value)
		}
		return out, nil

	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("line %d: mapping key: %w", node.Content[i].Line, err)
			}
			value, err := l.construct(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[key] = value
		}
		return out, nil

	case yaml.AliasNode:
		return l.construct(node.Alias)

	default:
		return nil, fmt.Errorf("line %d: cannot construct node kind %d", node.Line, node.Kind)
	}
}

// isLocalTag reports whether tag is an application-local tag like !include,
// as opposed to a shorthand core tag like !!str.
func isLocalTag(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}
