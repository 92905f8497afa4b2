// Package search implements the launcher's query model: token prefix
// matching, the filtered view of the catalog, and the highlighted row.
package search

import (
	"strings"

	"github.com/baaaaaaaka/float-launcher/internal/catalog"
)

// Matches reports whether every space-separated token of query is a prefix
// of one of the entry's tags or of one of the words in its name. Matching is
// case-sensitive. An empty token matches anything.
func Matches(query string, e catalog.Entry) bool {
	for _, token := range strings.Split(query, " ") {
		if !matchesToken(token, e) {
			return false
		}
	}
	return true
}

func matchesToken(token string, e catalog.Entry) bool {
	for _, tag := range e.Tags {
		if strings.HasPrefix(tag, token) {
			return true
		}
	}
	for _, word := range strings.Split(e.Name, " ") {
		if strings.HasPrefix(word, token) {
			return true
		}
	}
	return false
}
