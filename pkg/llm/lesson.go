package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Hindi complexity guides, one per difficulty level.
var levelGuides = map[string]string{
	"beginner":     "Use very simple Hindi: basic everyday vocabulary, short sentences, present tense where possible.",
	"intermediate": "Use moderately complex Hindi: common news vocabulary, compound sentences, everyday idioms.",
	"advanced":     "Use natural native-level Hindi: full news vocabulary, complex sentence structures, formal register.",
}

const defaultLevel = "beginner"

// NormalizeLevel maps unknown or empty levels to the default.
func NormalizeLevel(level string) string {
	if _, ok := levelGuides[level]; ok {
		return level
	}
	return defaultLevel
}

// BuildSummaryPrompt produces the fixed-format summarization
// instruction: alternating Hindi and Hebrew lines, no English output.
func BuildSummaryPrompt(text, level string) string {
	guide := levelGuides[NormalizeLevel(level)]

	var sb strings.Builder
	sb.WriteString("Summarize the following text in Hindi for a Hebrew-speaking learner.\n\n")
	sb.WriteString(guide)
	sb.WriteString("\n\n")
	sb.WriteString("Write the summary as alternating lines: one sentence in Hindi using Devanagari script only, then its Hebrew translation on the next line. ")
	sb.WriteString("Do not write any English words or Latin characters anywhere in your answer. Do not add headings or commentary.\n\n")
	sb.WriteString("Text:\n")
	sb.WriteString(text)
	return sb.String()
}

// FilterLessonLines keeps only lines that contain at least one
// Devanagari or Hebrew rune. Everything else, including pure-Latin
// prose the model sometimes adds around the lesson, is dropped.
func FilterLessonLines(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if hasDevanagari(line) || hasHebrew(line) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// WordGloss pairs one Hindi word with its short Hebrew gloss.
type WordGloss struct {
	Hindi  string `json:"hi"`
	Hebrew string `json:"he"`
}

// BuildWordMapPrompt produces the numbered-list instruction asking for
// a strict JSON word-to-gloss mapping.
func BuildWordMapPrompt(words []string) string {
	var sb strings.Builder
	sb.WriteString("Translate each Hindi word below into a short Hebrew gloss of one or two words.\n\n")
	for i, w := range words {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, w))
	}
	sb.WriteString("\nRespond with a JSON object of this exact form:\n")
	sb.WriteString(`{"words":[{"hi":"<word exactly as given>","he":"<Hebrew gloss>"}]}`)
	sb.WriteString("\nInclude one entry per word, in the same order as the list. Output the JSON object only, no other text.")
	return sb.String()
}

// ParseWordGlosses decodes the model response and normalizes it
// strictly by position: entry i glosses input word i. The returned
// slice always has one element per input word, in input order, with
// the original spelling. A gloss without a single Hebrew rune is
// discarded.
func ParseWordGlosses(content string, words []string) ([]WordGloss, error) {
	var parsed struct {
		Words []WordGloss `json:"words"`
	}

	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		extracted := extractJSONObject(content)
		if err2 := json.Unmarshal([]byte(extracted), &parsed); err2 != nil {
			return nil, fmt.Errorf("failed to parse word map response: %w, content: %s", err2, content)
		}
	}

	glosses := make([]WordGloss, len(words))
	for i, w := range words {
		glosses[i] = WordGloss{Hindi: w}
		if i < len(parsed.Words) && hasHebrew(parsed.Words[i].Hebrew) {
			glosses[i].Hebrew = parsed.Words[i].Hebrew
		}
	}
	return glosses, nil
}

// extractJSONObject recovers a JSON object from responses that wrap it
// in code fences or extra prose.
func extractJSONObject(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

func hasDevanagari(s string) bool {
	for _, r := range s {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

func hasHebrew(s string) bool {
	for _, r := range s {
		if r >= 0x0590 && r <= 0x05FF {
			return true
		}
	}
	return false
}
