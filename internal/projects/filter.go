package projects

import "github.com/sahilm/fuzzy"

// Filter returns the paths matching query, best match first.
// An empty query returns paths unchanged.
func Filter(paths []string, query string) []string {
	if query == "" {
		return paths
	}

	matches := fuzzy.Find(query, paths)
	result := make([]string, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.Str)
	}
	return result
}
