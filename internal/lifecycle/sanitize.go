package lifecycle

import (
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces a user-supplied filename to a safe basename that
// cannot escape the storage directories. Path separators are stripped,
// spaces become underscores and anything outside [A-Za-z0-9_.-] is dropped.
// Returns "" when nothing usable remains; callers must treat that as a
// client input error.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	return name
}
