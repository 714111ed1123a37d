package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s`. Case is kept.
func CleanString(s string) string {
	return strings.TrimSpace(s)
}
