package rules

import (
	"github.com/workincz/moderator/moderation/setstore"
)

// Baseline keyword sets for the default rules, used when no sets file is
// configured. Operators extend or replace these via a JSON sets file.
func DefaultSets() *setstore.MemSetStore {
	s := setstore.NewMemSetStore()
	s.AddToSet("spam-phrases", []string{
		"make money fast",
		"get rich quick",
		"guaranteed income",
		"work from home guaranteed",
		"earn thousands weekly",
		"click here now",
		"limited time offer",
	})
	s.AddToSet("link-shorteners", []string{
		"bit.ly",
		"tinyurl.com",
		"goo.gl",
		"t.co",
		"ow.ly",
		"is.gd",
		"buff.ly",
		"cutt.ly",
	})
	s.AddToSet("forbidden-words", []string{
		"scam",
		"fraud",
		"podvod",
		"pyramid",
		"mlm",
	})
	return s
}
