package stylesheet

import (
	"sort"
	"strings"
)

// Replace substitutes every key of replacements in one left to right pass.
// When several keys match at the same position the longest one wins, so
// $list_focusOutline is never cut short by $list_focus.
func Replace(target string, replacements map[string]string) string {
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return target
	}

	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, replacements[k])
	}
	return strings.NewReplacer(pairs...).Replace(target)
}

// PlaceholderKey converts a role id into its template placeholder. Dots become
// underscores, so ids differing only in those two characters collide.
func PlaceholderKey(id string) string {
	return "$" + strings.ReplaceAll(id, ".", "_")
}
