package utils

import "github.com/microcosm-cc/bluemonday"

// Journal notes are plain text for the user's own eyes; strip all markup
// rather than allowing a UGC subset.
var noteSanitizer = bluemonday.StrictPolicy()

// SanitizeNote strips HTML from free-text journal content before storage.
func SanitizeNote(input string) string {
	return noteSanitizer.Sanitize(input)
}
