package coachservice

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

const (
	// MinFilteredPool is the smallest pool the recency filter may leave behind.
	// Below it the filter is dropped and the full pool is used.
	MinFilteredPool = 4

	topicKeyMaxRunes = 32
)

// numberUnitRE matches a number together with a trailing unit, so lines that
// differ only in their quantities share a topic key.
var numberUnitRE = regexp.MustCompile(`\d+(?:[.,]\d+)?(?:\s*(?:kcal|mg|kg|ml|g|l|h|hours?|days?)\b|\s*%)?`)

// TopicKey fingerprints an advice line: lower-cased, full-width forms folded,
// numbers and units removed, everything but letters and digits dropped,
// truncated to 32 runes.
func TopicKey(line string) string {
	s := strings.ToLower(width.Fold.String(line))
	s = numberUnitRE.ReplaceAllString(s, "")

	var sb strings.Builder
	n := 0
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			continue
		}
		sb.WriteRune(r)
		n++
		if n == topicKeyMaxRunes {
			break
		}
	}
	return sb.String()
}

// FilterRecent drops candidates whose topic key appears in recent. Avoiding
// repeats is best effort: if fewer than MinFilteredPool candidates survive,
// the unfiltered pool is returned.
func FilterRecent(pool []Candidate, recent []string) []Candidate {
	if len(recent) == 0 {
		return pool
	}

	skip := make(map[string]struct{}, len(recent))
	for _, topic := range recent {
		skip[topic] = struct{}{}
	}

	kept := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if _, ok := skip[TopicKey(c.Text)]; ok {
			continue
		}
		kept = append(kept, c)
	}

	if len(kept) < MinFilteredPool {
		return pool
	}
	return kept
}
