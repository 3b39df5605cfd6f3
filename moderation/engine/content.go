package engine

import (
	"strings"

	"github.com/workincz/moderator/moderation/util"
)

// Known content types. Unknown types are accepted: only the generic rules
// run against them.
const (
	ContentTypeJobPosting  = "job_posting"
	ContentTypeUserProfile = "user_profile"
	ContentTypeMessage     = "message"
	ContentTypeReview      = "review"
)

// A single piece of user-submitted content, as handed to the engine by the
// application. Field values the engine doesn't recognize are carried but
// ignored; missing fields read as empty strings, never errors.
type ContentRecord struct {
	// stable identifier; derived from author and text when left empty
	ID          string
	ContentType string
	AuthorID    string
	Fields      map[string]string
}

// text-bearing fields, concatenated in this order for spam and quality checks
var textFields = []string{"title", "description", "comment", "message"}

func (rec *ContentRecord) Field(name string) string {
	if rec.Fields == nil {
		return ""
	}
	return rec.Fields[name]
}

func (rec *ContentRecord) Title() string {
	return rec.Field("title")
}

func (rec *ContentRecord) Description() string {
	return rec.Field("description")
}

// All text-bearing field values joined with spaces. Empty fields are skipped.
func (rec *ContentRecord) CombinedText() string {
	var parts []string
	for _, f := range textFields {
		if v := rec.Field(f); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// ContentID returns the record's identifier, deriving a stable hash of the
// author and combined text when the caller didn't supply one.
func (rec *ContentRecord) ContentID() string {
	if rec.ID != "" {
		return rec.ID
	}
	return util.HashOfString(rec.AuthorID + "\x00" + rec.CombinedText())
}
