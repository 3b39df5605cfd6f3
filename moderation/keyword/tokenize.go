package keyword

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonTokenChars = regexp.MustCompile(`[^\pL\pN\s]+`)

// Splits free-form text in to tokens, including lower-case, unicode normalization, and some unicode folding.
//
// The intent is for this to work similarly to an NLP tokenizer, as might be used in a fulltext search engine, and enable fast matching to a list of known tokens. Job-board content is frequently mixed Czech/English, so diacritics get folded ("Plzeň" and "plzen" tokenize the same).
func TokenizeText(text string) []string {
	// this function needs to be re-defined in every function call to prevent a race condition
	normFunc := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	split := strings.ToLower(nonTokenChars.ReplaceAllString(text, " "))
	bare := strings.ToLower(nonTokenChars.ReplaceAllString(split, ""))
	norm, _, err := transform.String(normFunc, bare)
	if err != nil {
		slog.Warn("unicode normalization error", "err", err)
		norm = bare
	}
	return strings.Fields(norm)
}

// Returns the distinct token set of the text, for set-based similarity comparison.
func TokenSet(text string) map[string]bool {
	out := make(map[string]bool)
	for _, tok := range TokenizeText(text) {
		out[tok] = true
	}
	return out
}

// Word-set Jaccard similarity of two texts: |intersection| / |union|, in [0,1].
//
// Both-empty texts compare as identical (1.0), which matches how near-empty duplicate postings should be treated.
func JaccardSimilarity(a, b string) float64 {
	sa := TokenSet(a)
	sb := TokenSet(b)
	if len(sa) == 0 && len(sb) == 0 {
		return 1.0
	}
	inter := 0
	for tok := range sa {
		if sb[tok] {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}
