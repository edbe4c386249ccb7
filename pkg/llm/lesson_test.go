package llm

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestNormalizeLevel(t *testing.T) {
	assert.Equal(t, "beginner", NormalizeLevel(""))
	assert.Equal(t, "beginner", NormalizeLevel("expert"))
	assert.Equal(t, "beginner", NormalizeLevel("beginner"))
	assert.Equal(t, "intermediate", NormalizeLevel("intermediate"))
	assert.Equal(t, "advanced", NormalizeLevel("advanced"))
}

func TestBuildSummaryPrompt(t *testing.T) {
	prompt := BuildSummaryPrompt("The markets rallied today.", "advanced")

	if !strings.Contains(prompt, "native-level Hindi") {
		t.Errorf("prompt should contain the advanced guide, got: %s", prompt)
	}
	if !strings.Contains(prompt, "The markets rallied today.") {
		t.Errorf("prompt should contain the source text")
	}
	if !strings.Contains(prompt, "Hebrew translation") {
		t.Errorf("prompt should request alternating Hebrew lines")
	}
}

func TestBuildSummaryPrompt_UnknownLevelFallsBack(t *testing.T) {
	prompt := BuildSummaryPrompt("text", "fluent")

	if !strings.Contains(prompt, "very simple Hindi") {
		t.Errorf("unknown level should use the beginner guide, got: %s", prompt)
	}
}

func TestFilterLessonLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "keeps hindi and hebrew lines",
			input: "आज मौसम अच्छा है\nמזג האוויר טוב היום",
			want:  "आज मौसम अच्छा है\nמזג האוויר טוב היום",
		},
		{
			name:  "drops pure latin lines",
			input: "Here is your summary:\nआज मौसम अच्छा है\nמזג האוויר טוב היום\nHope that helps!",
			want:  "आज मौसम अच्छा है\nמזג האוויר טוב היום",
		},
		{
			name:  "keeps mixed-script lines",
			input: "1. आज मौसम अच्छा है",
			want:  "1. आज मौसम अच्छा है",
		},
		{
			name:  "all latin yields empty",
			input: "Sorry, I could not summarize that.",
			want:  "",
		},
		{
			name:  "empty input yields empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLessonLines(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildWordMapPrompt(t *testing.T) {
	prompt := BuildWordMapPrompt([]string{"ek", "din"})

	if !strings.Contains(prompt, "1. ek\n2. din\n") {
		t.Errorf("prompt should number the words, got: %s", prompt)
	}
	if !strings.Contains(prompt, `{"words":[{"hi":`) {
		t.Errorf("prompt should pin the JSON shape, got: %s", prompt)
	}
}

func TestParseWordGlosses_StrictJSON(t *testing.T) {
	content := `{"words":[{"hi":"ek","he":"אחד"},{"hi":"din","he":"יום"}]}`

	glosses, err := ParseWordGlosses(content, []string{"ek", "din"})

	assert.Equal(t, nil, err)
	assert.Equal(t, []WordGloss{{Hindi: "ek", Hebrew: "אחד"}, {Hindi: "din", Hebrew: "יום"}}, glosses)
}

func TestParseWordGlosses_FewerEntriesThanWords(t *testing.T) {
	content := `{"words":[{"hi":"ek","he":"אחד"}]}`

	glosses, err := ParseWordGlosses(content, []string{"ek", "din"})

	assert.Equal(t, nil, err)
	assert.Equal(t, []WordGloss{{Hindi: "ek", Hebrew: "אחד"}, {Hindi: "din", Hebrew: ""}}, glosses)
}

func TestParseWordGlosses_PositionalNotByWord(t *testing.T) {
	// Entries map by position even when the model rewrites the words.
	content := `{"words":[{"hi":"EK","he":"אחד"},{"hi":"DIN","he":"יום"}]}`

	glosses, err := ParseWordGlosses(content, []string{"ek", "din"})

	assert.Equal(t, nil, err)
	assert.Equal(t, "ek", glosses[0].Hindi)
	assert.Equal(t, "din", glosses[1].Hindi)
	assert.Equal(t, "אחד", glosses[0].Hebrew)
}

func TestParseWordGlosses_NonHebrewGlossDiscarded(t *testing.T) {
	content := `{"words":[{"hi":"ek","he":"one"},{"hi":"din","he":"יום"}]}`

	glosses, err := ParseWordGlosses(content, []string{"ek", "din"})

	assert.Equal(t, nil, err)
	assert.Equal(t, "", glosses[0].Hebrew)
	assert.Equal(t, "יום", glosses[1].Hebrew)
}

func TestParseWordGlosses_BraceExtractionFallback(t *testing.T) {
	content := "Sure! Here is the mapping:\n```json\n{\"words\":[{\"hi\":\"ek\",\"he\":\"אחד\"}]}\n```\nLet me know if you need more."

	glosses, err := ParseWordGlosses(content, []string{"ek"})

	assert.Equal(t, nil, err)
	assert.Equal(t, "אחד", glosses[0].Hebrew)
}

func TestParseWordGlosses_Unparseable(t *testing.T) {
	_, err := ParseWordGlosses("I cannot help with that.", []string{"ek"})

	assert.NotEqual(t, nil, err)
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"words":[]}`,
			want:  `{"words":[]}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"words\":[]}\n```",
			want:  `{"words":[]}`,
		},
		{
			name:  "takes first brace to last brace",
			input: `prefix {"words":[]} suffix`,
			want:  `{"words":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSONObject(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
