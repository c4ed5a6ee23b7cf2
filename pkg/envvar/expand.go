package envvar

import (
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// placeholderPattern matches ${VAR_NAME} and ${VAR_NAME:-default} placeholders.
// Groups: 1 = variable name, 2 = optional default value (after :-).
var placeholderPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// defaultMarker is the delimiter used for default value syntax in placeholders.
const defaultMarker = ":-"

// Expand replaces ${VAR_NAME} and ${VAR_NAME:-default} placeholders with their
// environment variable values. If a referenced environment variable is not set:
//   - With default syntax ${VAR:-default}: the default value is used
//   - Without default ${VAR}: an empty string is used and a warning is logged
func Expand(value string) string {
	if value == "" {
		return value
	}

	return placeholderPattern.ReplaceAllStringFunc(value, expandMatch)
}

// expandMatch expands a single placeholder match.
func expandMatch(match string) string {
	groups := placeholderPattern.FindStringSubmatch(match)
	if len(groups) < 2 {
		return match
	}

	name := groups[1]
	if value, ok := os.LookupEnv(name); ok {
		return value
	}

	// Default syntax was used, possibly with an empty default.
	if strings.Contains(match, defaultMarker) {
		return groups[2]
	}

	slog.Warn("environment variable not set", "variable", name)

	return ""
}

// ExpandBytes expands environment variable placeholders in file content.
func ExpandBytes(data []byte) []byte {
	return []byte(Expand(string(data)))
}
