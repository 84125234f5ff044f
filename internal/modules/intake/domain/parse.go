package domain

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FallbackTopic is used when no topic can be identified in the text.
const FallbackTopic = "General Study"

// knownSubjects are matched as substrings of the lowercased input.
var knownSubjects = []string{
	"math", "calculus", "algebra", "geometry", "statistics",
	"physics", "chemistry", "biology", "anatomy",
	"history", "geography", "literature", "english",
	"computer science", "programming", "algorithms",
	"economics", "psychology", "sociology",
}

var (
	quotedPattern  = regexp.MustCompile(`["']([^"']+)["']`)
	studyPattern   = regexp.MustCompile(`study\s+([a-zA-Z\s]{3,30})(?:\s+and|\s+for|\s+exam|$)`)
	hoursPattern   = regexp.MustCompile(`(\d+)\s*hours?\s*(?:per\s*day|daily|each\s*day)`)
	inDaysPattern  = regexp.MustCompile(`in\s+(\d+)\s+days?`)
	inWeeksPattern = regexp.MustCompile(`in\s+(\d+)\s+weeks?`)
)

// ParsedRequest is what free text yields. Deadline is zero when the text
// names none; DailyHours is zero when the text names none.
type ParsedRequest struct {
	Topics     []string
	DailyHours float64
	Deadline   time.Time
}

// Parse extracts topics, daily hours, and a deadline from free text.
// Deadline phrases are resolved relative to now.
func Parse(text string, now time.Time) ParsedRequest {
	parsed := ParsedRequest{Topics: ExtractTopics(text)}
	if hours, ok := extractDailyHours(text); ok {
		parsed.DailyHours = hours
	}
	if deadline, ok := ExtractDeadline(text, now); ok {
		parsed.Deadline = deadline
	}
	return parsed
}

// ExtractTopics finds study topics in free text: known subjects first, then
// quoted phrases, then "study X" patterns. Results are deduplicated
// case-insensitively and sorted for stable output. Falls back to a single
// generic topic when nothing matches.
func ExtractTopics(text string) []string {
	lower := strings.ToLower(text)

	var topics []string
	for _, subject := range knownSubjects {
		if strings.Contains(lower, subject) {
			topics = append(topics, titleCase(subject))
		}
	}
	for _, match := range quotedPattern.FindAllStringSubmatch(text, -1) {
		topics = append(topics, strings.TrimSpace(match[1]))
	}
	for _, match := range studyPattern.FindAllStringSubmatch(lower, -1) {
		topic := titleCase(strings.TrimSpace(match[1]))
		if topic != "" {
			topics = append(topics, topic)
		}
	}

	seen := map[string]struct{}{}
	out := make([]string, 0, len(topics))
	for _, topic := range topics {
		key := strings.ToLower(topic)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, topic)
	}
	sort.Strings(out)

	if len(out) == 0 {
		return []string{FallbackTopic}
	}
	return out
}

func extractDailyHours(text string) (float64, bool) {
	match := hoursPattern.FindStringSubmatch(strings.ToLower(text))
	if match == nil {
		return 0, false
	}
	hours, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}
	return hours, true
}

// ExtractDeadline resolves natural-language deadline phrases. "exam" or
// "test" without an explicit date assumes one week out.
func ExtractDeadline(text string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "next week"):
		return now.AddDate(0, 0, 7), true
	case strings.Contains(lower, "two weeks"):
		return now.AddDate(0, 0, 14), true
	}
	if match := inDaysPattern.FindStringSubmatch(lower); match != nil {
		days, _ := strconv.Atoi(match[1])
		return now.AddDate(0, 0, days), true
	}
	if match := inWeeksPattern.FindStringSubmatch(lower); match != nil {
		weeks, _ := strconv.Atoi(match[1])
		return now.AddDate(0, 0, weeks*7), true
	}
	if strings.Contains(lower, "tomorrow") {
		return now.AddDate(0, 0, 1), true
	}
	if strings.Contains(lower, "exam") || strings.Contains(lower, "test") {
		return now.AddDate(0, 0, 7), true
	}
	return time.Time{}, false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
