package catalog

import (
	"regexp"
	"strings"
)

var chapterNumbering = regexp.MustCompile(`^\d+(\.\d+)?\s*`)

// CleanTitle strips a leading chapter numbering prefix ("3 " or "3.2 ")
// from a chapter key for display.
func CleanTitle(key string) string {
	return strings.TrimSpace(chapterNumbering.ReplaceAllString(key, ""))
}

// CleanAnswer trims question echo from the front of an answer: dataset
// answers often restate the question ("A pivot table is ..."), so leading
// words already present in the question are dropped. When trimming leaves
// three or fewer words, the full answer is kept behind an "It refers to"
// prefix instead.
func CleanAnswer(question, answer string) string {
	qset := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(question)) {
		qset[strings.Trim(w, ".,?")] = true
	}

	words := strings.Fields(strings.TrimSpace(answer))
	start := 0
	for _, w := range words {
		if !qset[strings.Trim(strings.ToLower(w), ".,?")] {
			break
		}
		start++
	}

	cleaned := strings.TrimSpace(strings.Join(words[start:], " "))
	if cleaned == "" || len(strings.Fields(cleaned)) <= 3 {
		cleaned = "It refers to " + strings.Join(words, " ")
	}
	if cleaned != "" {
		cleaned = strings.ToUpper(cleaned[:1]) + cleaned[1:]
	}
	return strings.TrimRight(cleaned, ". ")
}
