package rules

import (
	"regexp"
	"strings"

	"github.com/workincz/moderator/moderation"
	"github.com/workincz/moderator/moderation/keyword"
	"github.com/workincz/moderator/moderation/util"
)

var _ moderation.ContentRuleFunc = SpamContentRule

var suspiciousPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"shouting", regexp.MustCompile(`[A-Z]{5,}`)},
	{"excessive-exclamation", regexp.MustCompile(`!{3,}`)},
	{"money-symbols", regexp.MustCompile(`\${2,}`)},
	{"long-number", regexp.MustCompile(`[0-9]{10,}`)},
}

// Classic spam signals on the combined text: known spam phrases, shouting
// and symbol-run patterns, and link-shortener domains. A single hit rejects
// the content outright.
func SpamContentRule(c *moderation.ContentContext) error {
	text := c.Record.CombinedText()
	if text == "" {
		return nil
	}
	lowered := strings.ToLower(text)

	// also compare slugified forms, so punctuation tricks like
	// "m.a.k.e m.o.n.e.y" still match the phrase set
	slugged := keyword.Slugify(text)
	for _, phrase := range c.SetValues("spam-phrases") {
		if strings.Contains(lowered, phrase) || strings.Contains(slugged, keyword.Slugify(phrase)) {
			spamHit(c, "phrase: "+phrase)
			return nil
		}
	}
	for _, pat := range suspiciousPatterns {
		if pat.re.MatchString(text) {
			spamHit(c, pat.name)
			return nil
		}
	}
	// RE2 has no backreferences, so repeated-character runs are checked by hand
	if hasRepeatedRun(text, 5) {
		spamHit(c, "repeated-characters")
		return nil
	}
	for _, raw := range util.ExtractTextURLs(lowered) {
		if c.InSet("link-shorteners", urlHost(raw)) {
			spamHit(c, "link-shortener: "+raw)
			return nil
		}
	}
	return nil
}

func spamHit(c *moderation.ContentContext, signal string) {
	c.Logger.Debug("spam signal matched", "signal", signal)
	c.AddFlag("spam")
	c.AddScore(50)
	c.Reject(moderation.RejectReasonSpam)
	c.Increment("spam-detected", c.Record.ContentType)
	c.Notify("webhook")
}

// true when the text contains a run of `n` or more identical characters
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= n {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// hostname part of a loosely matched URL: scheme and path stripped
func urlHost(raw string) string {
	if i := strings.Index(raw, "://"); i >= 0 {
		raw = raw[i+3:]
	}
	if i := strings.IndexByte(raw, '/'); i >= 0 {
		raw = raw[:i]
	}
	return raw
}
