package report

import "strings"

// Affirmative reports whether an answer to the save prompt means yes.
func Affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	}
	return false
}
