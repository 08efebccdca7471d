// Package yamlinc extends YAML document loading with a custom !include tag.
//
// A document can transparently include other YAML (or plain text) files at
// parse time:
//
//	defaults: !include defaults.yaml
//	hosts: !include [hosts/**/*.yaml, true]
//	motd: !include {pathname: motd.txt, encoding: iso-8859-1}
//
// Include paths may contain glob wildcards and ${name} placeholders resolved
// against environment variables or a nested mapping supplied through the
// "config" environment variable. Included .yaml/.yml files are parsed with
// the same loader class as the enclosing document, so nested includes resolve
// transitively; any other file is returned as its raw text content.
//
// Host applications bind a resolver to a loader class once via Register and
// then parse documents through a Loader of that class.
package yamlinc

// Class identifies a loader class. Each class carries its own tag bindings;
// a resolver registered for one class is invisible to the others.
type Class string

const (
	// DefaultClass constructs nodes with unregistered local tags as plain
	// values.
	DefaultClass Class = "default"

	// StrictClass rejects nodes carrying local tags that have no registered
	// constructor.
	StrictClass Class = "strict"
)

const (
	// DefaultTagName is the tag bound by Register when none is given.
	DefaultTagName = "!include"

	// DefaultEncoding is the fallback encoding for included files when
	// neither the request nor the resolver specifies one.
	DefaultEncoding = "utf-8"
)
