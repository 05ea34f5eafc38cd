// internal/transcript/processor.go
package transcript

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// FallbackSummary is returned when a transcript has no sentence-like content.
const FallbackSummary = "Meeting transcript processed."

const (
	maxPeople    = 5
	maxDecisions = 3
	maxActions   = 3
	maxTitleLen  = 100
)

// Entities holds the heuristic extraction result. All four lists are
// always present; risks has no extraction rule yet and stays empty.
type Entities struct {
	People    []string `json:"people"`
	Dates     []string `json:"dates"`
	Decisions []string `json:"decisions"`
	Risks     []string `json:"risks"`
}

// Map converts the entities to the key-value shape persisted on a Note.
func (e Entities) Map() map[string]interface{} {
	return map[string]interface{}{
		"people":    e.People,
		"dates":     e.Dates,
		"decisions": e.Decisions,
		"risks":     e.Risks,
	}
}

// ActionItem is an advisory task candidate pulled from a transcript.
// DueAt is never populated by extraction; callers may set it before
// turning an item into a Task.
type ActionItem struct {
	Title    string     `json:"title"`
	Priority string     `json:"priority"`
	DueAt    *time.Time `json:"due_at,omitempty"`
}

var (
	capitalizedWord = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

	datePattern = regexp.MustCompile(
		`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)` +
			`\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?`)

	sentenceDelim = regexp.MustCompile(`[.!?]+`)

	// Capitalized words that are sentence starters or common nouns,
	// not people.
	peopleStoplist = map[string]bool{
		"The":     true,
		"This":    true,
		"That":    true,
		"We":      true,
		"They":    true,
		"Meeting": true,
		"Today":   true,
	}

	decisionKeywords = []string{"decided", "agreed", "concluded", "resolved"}

	actionKeywords = []string{
		"need to", "should", "will", "must",
		"action item", "follow up", "todo",
	}

	actionPriorities = []string{"high", "med", "low"}
)

// Summarize builds a one-line summary: the first period-delimited
// segment plus a word-count annotation.
func Summarize(transcript string) string {
	first := ""
	for _, segment := range strings.Split(transcript, ".") {
		if s := strings.TrimSpace(segment); s != "" {
			first = s
			break
		}
	}
	if first == "" {
		return FallbackSummary
	}

	words := len(strings.Fields(transcript))
	return fmt.Sprintf("Meeting summary: %s. (%d words transcribed)", first, words)
}

// ExtractEntities pulls people, dates and decisions out of a transcript.
func ExtractEntities(transcript string) Entities {
	entities := Entities{
		People:    []string{},
		Dates:     []string{},
		Decisions: []string{},
		Risks:     []string{},
	}

	seen := make(map[string]bool)
	for _, word := range capitalizedWord.FindAllString(transcript, -1) {
		if peopleStoplist[word] || seen[word] {
			continue
		}
		seen[word] = true
		entities.People = append(entities.People, word)
		if len(entities.People) == maxPeople {
			break
		}
	}

	seenDates := make(map[string]bool)
	for _, date := range datePattern.FindAllString(transcript, -1) {
		if seenDates[date] {
			continue
		}
		seenDates[date] = true
		entities.Dates = append(entities.Dates, date)
	}

	seenDecisions := make(map[string]bool)
	for _, sentence := range splitSentences(transcript) {
		if !containsAnyFold(sentence, decisionKeywords) || seenDecisions[sentence] {
			continue
		}
		seenDecisions[sentence] = true
		entities.Decisions = append(entities.Decisions, sentence)
		if len(entities.Decisions) == maxDecisions {
			break
		}
	}

	return entities
}

// ExtractActions finds up to three actionable sentences. Priority is
// positional: the first match is high, the second med, the third low.
func ExtractActions(transcript string) []ActionItem {
	actions := []ActionItem{}
	for _, sentence := range splitSentences(transcript) {
		if !containsAnyFold(sentence, actionKeywords) {
			continue
		}

		title := sentence
		if len(title) > maxTitleLen {
			// Back off to a rune boundary so the cut never splits a
			// multi-byte character.
			cut := maxTitleLen - 3
			for cut > 0 && !utf8.RuneStart(title[cut]) {
				cut--
			}
			title = title[:cut] + "..."
		}

		actions = append(actions, ActionItem{
			Title:    title,
			Priority: actionPriorities[len(actions)],
		})
		if len(actions) == maxActions {
			break
		}
	}
	return actions
}

func splitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceDelim.Split(text, -1) {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func containsAnyFold(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
