package tutor

import (
	"strings"

	"github.com/sravani919/studyhall/internal/catalog"
)

// BestMatch finds the stored pair whose question is most similar to the
// learner's question. Used as the offline answer path when no LLM
// provider is configured. ok is false for an empty chapter.
func BestMatch(question string, pairs []catalog.Pair) (best catalog.Pair, ok bool) {
	if len(pairs) == 0 {
		return catalog.Pair{}, false
	}

	q := strings.ToLower(question)
	bestScore := -1.0
	for _, p := range pairs {
		if s := similarityRatio(q, strings.ToLower(p.Question)); s > bestScore {
			bestScore = s
			best = p
		}
	}
	return best, true
}

// similarityRatio measures how alike two strings are: twice the total
// length of their matching blocks over the combined length, in [0, 1].
// Matching blocks are found by taking the longest common substring and
// recursing on the pieces to its left and right.
func similarityRatio(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchedChars(a, b)) / float64(total)
}

func matchedChars(a, b string) int {
	ai, bi, n := longestCommonSubstring(a, b)
	if n == 0 {
		return 0
	}
	return n +
		matchedChars(a[:ai], b[:bi]) +
		matchedChars(a[ai+n:], b[bi+n:])
}

// longestCommonSubstring returns the start offsets and length of the
// longest substring common to a and b.
func longestCommonSubstring(a, b string) (ai, bi, n int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}

	// prev[j] is the match run length ending at a[i-1], b[j-1].
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > n {
					n = cur[j]
					ai = i - n
					bi = j - n
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, n
}
