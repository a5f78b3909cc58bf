package service

import (
	"fmt"
	"strings"
)

// DefaultBannedWords are rejected anywhere in a movie plot.
var DefaultBannedWords = []string{"porn", "sex"}

// ContentPolicy matches text against an ordered list of forbidden
// substrings, ignoring case and surrounding whitespace.
type ContentPolicy struct {
	banned []string
}

func NewContentPolicy(words ...string) *ContentPolicy {
	banned := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			banned = append(banned, w)
		}
	}
	return &ContentPolicy{banned: banned}
}

// Violations returns every banned term found in text, in policy order.
func (p *ContentPolicy) Violations(text string) []string {
	normalized := strings.ToLower(strings.TrimSpace(text))

	var found []string
	for _, w := range p.banned {
		if strings.Contains(normalized, w) {
			found = append(found, w)
		}
	}
	return found
}

func bannedWordsMessage(words []string) string {
	return fmt.Sprintf("Movie can't contain banned words: %s", strings.Join(words, ", "))
}
