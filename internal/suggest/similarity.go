package suggest

import "strings"

// commonVariations are base ingredients/preparations that mark two dish
// names as near-duplicates when shared (e.g. "Jeera Rice" / "Lemon Rice").
var commonVariations = []string{
	"rice", "roti", "chapati", "bhaji", "chole",
	"paneer", "aloo", "gobi", "mushroom", "bhindi",
}

// dishesSimilar reports whether both names contain a common base token,
// case-insensitively.
func dishesSimilar(dish1, dish2 string) bool {
	a := strings.ToLower(dish1)
	b := strings.ToLower(dish2)
	for _, word := range commonVariations {
		if strings.Contains(a, word) && strings.Contains(b, word) {
			return true
		}
	}
	return false
}

// similarToAny reports whether the candidate clashes with any already
// selected dish.
func similarToAny(candidate string, selected []string) bool {
	for _, s := range selected {
		if dishesSimilar(candidate, s) {
			return true
		}
	}
	return false
}
