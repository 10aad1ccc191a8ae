package config

import "sort"

// Missing reports which of the named settings are empty, sorted by name.
func Missing(settings map[string]string) []string {
	var out []string
	for name, v := range settings {
		if v == "" {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
