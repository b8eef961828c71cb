package report

import (
	"fmt"
	"regexp"
)

var hostile = regexp.MustCompile(`[\\/*?:"<>|]`)

// FileName builds the output file name for an act. Names are distinct per
// (department, asset) pair so acts never overwrite each other.
func FileName(department, asset string) string {
	return Sanitize(fmt.Sprintf("Акт. %s %s", department, asset)) + ".docx"
}

// Sanitize replaces filesystem-hostile characters with underscores.
func Sanitize(name string) string {
	return hostile.ReplaceAllString(name, "_")
}
