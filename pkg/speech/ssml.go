package speech

import (
	"fmt"
	"strings"
)

const (
	langTag   = "hi-IN"
	voiceName = "hi-IN-SwaraNeural"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// ProsodyTier buckets a rate percentage into one of the five SSML
// prosody rates.
func ProsodyTier(rate int) string {
	switch {
	case rate <= 80:
		return "x-slow"
	case rate <= 95:
		return "slow"
	case rate <= 110:
		return "medium"
	case rate <= 125:
		return "fast"
	default:
		return "x-fast"
	}
}

// BuildSSML wraps text in the fixed Hindi voice template. Words are
// split on whitespace, XML-escaped individually and joined with a
// break element when pauseMs > 0, otherwise with a plain space.
func BuildSSML(text string, rate, pauseMs int) string {
	words := strings.Fields(text)
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = xmlEscaper.Replace(w)
	}

	separator := " "
	if pauseMs > 0 {
		separator = fmt.Sprintf(`<break time="%dms"/>`, pauseMs)
	}
	body := strings.Join(escaped, separator)

	return fmt.Sprintf(
		"<speak version='1.0' xml:lang='%s'><voice name='%s'><prosody rate='%s'>%s</prosody></voice></speak>",
		langTag, voiceName, ProsodyTier(rate), body,
	)
}
