package rules

import (
	"strings"
	"unicode"

	"github.com/workincz/moderator/moderation"
)

// readability scores below this are penalized
const lowReadabilityThreshold = 0.3

var _ moderation.ContentRuleFunc = ReadabilityRule

// Flesch-style reading-ease check on the combined text, normalized to
// [0,1]. Wall-of-text postings with very long sentences score low and get a
// quality penalty; very short texts are skipped as there is nothing to
// measure.
func ReadabilityRule(c *moderation.ContentContext) error {
	text := c.Record.CombinedText()
	words := strings.Fields(text)
	if len(words) < 5 {
		return nil
	}
	if readabilityScore(text) < lowReadabilityThreshold {
		c.AddFlag("low_readability")
		c.AddScore(20)
	}
	return nil
}

var _ moderation.ContentRuleFunc = JobPostingCompletenessRule

// Structural completeness beyond the hard required fields: postings without
// location or salary read as low-effort and add to the quality score.
func JobPostingCompletenessRule(c *moderation.ContentContext) error {
	if c.Record.Field("location") == "" || c.Record.Field("salary") == "" {
		c.AddFlag("incomplete_posting")
		c.AddScore(15)
	}
	return nil
}

var _ moderation.ContentRuleFunc = UserProfileCompletenessRule

func UserProfileCompletenessRule(c *moderation.ContentContext) error {
	if c.Record.Field("skills") == "" && c.Record.Field("experience") == "" {
		c.AddFlag("incomplete_profile")
		c.AddScore(10)
	}
	return nil
}

// Flesch reading-ease, scaled from the usual 0-100ish range down to [0,1].
func readabilityScore(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 1.0
	}
	sentences := countSentences(text)
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}
	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))
	fre := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	norm := fre / 100.0
	if norm < 0 {
		return 0
	}
	if norm > 1 {
		return 1
	}
	return norm
}

func countSentences(text string) int {
	n := 0
	inTerminator := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inTerminator {
				n++
				inTerminator = true
			}
		default:
			inTerminator = false
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// crude vowel-group syllable estimate; good enough for a quality signal
func countSyllables(word string) int {
	n := 0
	inVowelGroup := false
	for _, r := range strings.ToLower(word) {
		isVowel := strings.ContainsRune("aeiouyáéěíóúůý", unicode.ToLower(r))
		if isVowel && !inVowelGroup {
			n++
		}
		inVowelGroup = isVowel
	}
	if n == 0 {
		return 1
	}
	return n
}
