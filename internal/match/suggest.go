package match

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Suggestion thresholds.
const (
	// MinSuggestScore is the lowest similarity a name needs to be suggested.
	MinSuggestScore = 0.6
	// MaxSuggestions caps the number of suggestions returned.
	MaxSuggestions = 3
)

type candidate struct {
	name  string
	score float64
}

// Suggest returns the names most similar to name, best first.
//
// Names are compared on their keys with separators removed, so "create_time"
// is close to "CreateTime". Names scoring below MinSuggestScore are dropped
// and ties keep the input order. The result is never nil.
func Suggest(name string, names []string) []string {
	target := looseKey(name)

	var ranked []candidate

	for _, n := range names {
		score := similarity(target, looseKey(n))
		if score < MinSuggestScore {
			continue
		}

		ranked = append(ranked, candidate{name: n, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > MaxSuggestions {
		ranked = ranked[:MaxSuggestions]
	}

	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.name)
	}

	return out
}

// looseKey is Key without '_', '-' and spaces.
func looseKey(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}

		return r
	}, Key(name))
}

// similarity scores two keys in [0, 1] as 1 - distance/longest.
func similarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(distance(a, b))/float64(longest)
}

// distance is the edit distance between a and b in runes.
func distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			above := row[i]
			row[i] = min(above+1, row[i-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(ra)]
}
