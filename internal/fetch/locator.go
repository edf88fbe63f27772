package fetch

import (
	"regexp"
	"strings"
)

// Locator patterns accepted for Drive-hosted resumes:
//
//	https://drive.google.com/file/d/FILE_ID/view
//	https://drive.google.com/open?id=FILE_ID
//	https://docs.google.com/document/d/FILE_ID/edit
//	https://drive.google.com/uc?id=FILE_ID
//	FILE_ID (bare)
var (
	pathIDPattern  = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)
	queryIDPattern = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
	bareIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,}$`)
)

// ExtractFileID pulls the storage file id out of a locator. The second
// return value is false when the locator matches no recognized shape; the
// pipeline classifies that as LocatorInvalid before any I/O happens.
func ExtractFileID(locator string) (string, bool) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return "", false
	}

	if m := pathIDPattern.FindStringSubmatch(locator); m != nil {
		return m[1], true
	}
	if m := queryIDPattern.FindStringSubmatch(locator); m != nil {
		return m[1], true
	}
	if bareIDPattern.MatchString(locator) {
		return locator, true
	}

	return "", false
}
