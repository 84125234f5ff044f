package domain

import (
	"regexp"
	"strings"
)

var headingPattern = regexp.MustCompile(`(?i)^(?:chapter|unit|week|module|topic|lecture)\s*\d*[:.\-]?\s*(.+)$`)

var bulletPattern = regexp.MustCompile(`^(?:[-*\x{2022}]|\d+[.)])\s+(.+)$`)

// ExtractSyllabusTopics pulls candidate topics out of syllabus text: heading
// lines (Chapter/Unit/Week/...) and bullet or numbered list items. Candidates
// shorter than 3 or longer than 60 characters are dropped. At most maxTopics
// are returned in document order; maxTopics <= 0 means no limit.
func ExtractSyllabusTopics(text string, maxTopics int) []string {
	seen := map[string]struct{}{}
	var topics []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		candidate := ""
		if match := headingPattern.FindStringSubmatch(line); match != nil {
			candidate = match[1]
		} else if match := bulletPattern.FindStringSubmatch(line); match != nil {
			candidate = match[1]
		}
		candidate = strings.TrimSpace(candidate)
		if len(candidate) < 3 || len(candidate) > 60 {
			continue
		}
		key := strings.ToLower(candidate)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		topics = append(topics, candidate)
		if maxTopics > 0 && len(topics) >= maxTopics {
			break
		}
	}
	return topics
}
