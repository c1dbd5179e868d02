// Package flags provides helpers shared by the flag definitions of every command.
package flags

import (
	"strings"
)

// MrdocsPrefix is prepended to the environment variable of every flag.
const MrdocsPrefix = "MRDOCS"

// Prefix is a list of name parts joined into env var and flag names.
type Prefix []string

func (prefix Prefix) Prepend(val string) Prefix {
	return append([]string{val}, prefix...)
}

func (prefix Prefix) Append(val string) Prefix {
	return append(prefix, val)
}

// EnvVar returns the upper snake case env var of the flag name, e.g. `MRDOCS_LOG_LEVEL`.
func (prefix Prefix) EnvVar(name string) string {
	name = strings.Join(append(prefix, name), "_")

	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func (prefix Prefix) EnvVars(names ...string) []string {
	var envVars = make([]string, len(names))

	for i := range names {
		envVars[i] = prefix.EnvVar(names[i])
	}

	return envVars
}

// EnvVarsFor returns the env vars of the flag names under MrdocsPrefix.
func EnvVarsFor(names ...string) []string {
	return Prefix{MrdocsPrefix}.EnvVars(names...)
}
