package types

import "strings"

// FilterIngredients trims surrounding whitespace and drops empty items.
// The backend rejects a fully empty array, so when filtering removes
// everything a single empty-string placeholder is substituted. The function
// is idempotent: filtering an already-filtered list returns an equal list.
func FilterIngredients(ingredients []string) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		ing = strings.TrimSpace(ing)
		if ing != "" {
			out = append(out, ing)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}
