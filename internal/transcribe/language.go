package transcribe

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LanguageCheck guesses the language of a transcript. It only ever produces
// log output; a mismatch never fails a run.
type LanguageCheck struct {
	detector lingua.LanguageDetector
}

// NewLanguageCheck limits detection to the languages a presentation at the
// school plausibly uses, which keeps the detector small.
func NewLanguageCheck() *LanguageCheck {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Portuguese, lingua.Spanish, lingua.English, lingua.French, lingua.Italian).
		Build()
	return &LanguageCheck{detector: detector}
}

// Detect returns the ISO 639-1 code (lower case) of text.
func (c *LanguageCheck) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := c.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
