package config

import "strings"

// Placeholders recognised in alias patterns.
const (
	UserPlaceholder = "{USER}"
	HomePlaceholder = "{HOME}"
)

// Interpolate replaces {USER} and {HOME} in a path pattern.
// Unlike shell expansion there is no ~ handling; patterns are matched
// literally against the working directory.
func Interpolate(pattern, user, home string) string {
	if !strings.Contains(pattern, "{") {
		return pattern
	}
	return strings.NewReplacer(
		UserPlaceholder, user,
		HomePlaceholder, home,
	).Replace(pattern)
}

// Expand returns a copy of aliases with their patterns interpolated.
func Expand(aliases []PathAlias, user, home string) []PathAlias {
	out := make([]PathAlias, len(aliases))
	for i, a := range aliases {
		out[i] = PathAlias{Pattern: Interpolate(a.Pattern, user, home), Name: a.Name}
	}
	return out
}
