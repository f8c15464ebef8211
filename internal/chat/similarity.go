package chat

import "strings"

// similarityThreshold is the minimum score a catalog title must exceed to
// be accepted as the meaning of an otherwise unclassified message.
const similarityThreshold = 0.4

// tokenOverlapRatio is the minimum shared-rune ratio for two unequal
// tokens to count as the same word, which lets a slightly misspelled
// title ("matriz") still match its catalog entry ("matrix").
const tokenOverlapRatio = 0.8

// Similarity scores how close two texts are on a 0..1 scale. Rules apply
// in order, first match wins: equal after normalization scores 1.0, one
// containing the other scores 0.8, and otherwise the number of left-hand
// tokens present in the right-hand token set is divided by the larger of
// the two token counts. Both token lists empty scores 0.
func Similarity(a, b string) float64 {
	t1 := Normalize(a)
	t2 := Normalize(b)
	if t1 == t2 {
		return 1
	}
	if strings.Contains(t1, t2) || strings.Contains(t2, t1) {
		return 0.8
	}

	w1 := strings.Fields(t1)
	w2 := strings.Fields(t2)
	if len(w1) == 0 && len(w2) == 0 {
		return 0
	}
	shared := 0
	for _, w := range w1 {
		if tokenInSet(w, w2) {
			shared++
		}
	}
	larger := len(w1)
	if len(w2) > larger {
		larger = len(w2)
	}
	return float64(shared) / float64(larger)
}

// BestTitle scans a catalog and returns the title most similar to the
// message, accepting it only when the score exceeds the threshold. A
// title is scored against the whole message and against each of its
// tokens, so a title buried in a sentence ("quiero ver matriz") still
// surfaces.
func BestTitle(message string, titles []string) (string, float64, bool) {
	best := ""
	max := 0.0
	tokens := strings.Fields(Normalize(message))
	for _, title := range titles {
		score := Similarity(message, title)
		for _, tok := range tokens {
			if s := Similarity(tok, title); s > score {
				score = s
			}
		}
		if score > max {
			best, max = title, score
		}
	}
	if max <= similarityThreshold {
		return "", 0, false
	}
	return best, max, true
}

// tokenInSet reports whether token matches any member of set, either
// exactly or as a near-match by shared distinct runes.
func tokenInSet(token string, set []string) bool {
	for _, w := range set {
		if token == w || runeOverlap(token, w) >= tokenOverlapRatio {
			return true
		}
	}
	return false
}

// runeOverlap returns the count of distinct runes present in both words
// divided by the larger distinct-rune count. Symmetric by construction.
func runeOverlap(a, b string) float64 {
	ra := distinctRunes(a)
	rb := distinctRunes(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	shared := 0
	for r := range ra {
		if rb[r] {
			shared++
		}
	}
	larger := len(ra)
	if len(rb) > larger {
		larger = len(rb)
	}
	return float64(shared) / float64(larger)
}

func distinctRunes(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}
