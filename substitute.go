package yamlinc

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v4"
)

// placeholderPattern matches ${name} placeholders in include paths.
var placeholderPattern = regexp.MustCompile(`\$\{([^{}]+)\}`)

// contextEnvVar names the environment variable whose value, parsed as a YAML
// mapping, backs ${a.b.c} dot-path lookups.
const contextEnvVar = "config"

// substituteVariables rewrites ${name} placeholders in pathname. Each name
// is resolved against the OS environment first, then as a dot-path into the
// variable context. An unresolvable name is replaced with the empty string
// after a warning; substitution never fails.
func substituteVariables(pathname string, logger *slog.Logger) string {
	matches := placeholderPattern.FindAllStringSubmatch(pathname, -1)
	if len(matches) == 0 {
		return pathname
	}

	vars := variableContext()
	for _, match := range matches {
		name := match[1]
		value, ok := os.LookupEnv(name)
		if !ok {
			value, ok = lookupDotPath(vars, name)
		}
		if !ok {
			logger.Warn("no value for include variable", "name", name)
			value = ""
		}
		pathname = strings.ReplaceAll(pathname, "${"+name+"}", value)
	}
	return pathname
}

// variableContext parses the contextEnvVar environment variable as a YAML
// mapping. Returns nil when the variable is unset or its content is not a
// valid mapping; substitution then degrades to environment-only lookups.
func variableContext() map[string]any {
	raw, ok := os.LookupEnv(contextEnvVar)
	if !ok {
		return nil
	}
	var vars map[string]any
	if err := yaml.Unmarshal([]byte(raw), &vars); err != nil {
		return nil
	}
	return vars
}

// lookupDotPath walks a dot-separated key path through nested mappings and
// returns the final value's string form.
func lookupDotPath(vars map[string]any, name string) (string, bool) {
	if vars == nil {
		return "", false
	}
	var current any = vars
	for _, key := range strings.Split(name, ".") {
		mapping, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = mapping[key]
		if !ok {
			return "", false
		}
	}
	return fmt.Sprintf("%v", current), true
}
