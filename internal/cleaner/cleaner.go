// Package cleaner normalizes raw address text before it is handed to the
// tagger: line-break markers, stray unicode, boilerplate prefixes,
// parenthetical asides, and surveyor grid addresses.
package cleaner

import (
	"regexp"
	"strings"
)

var (
	brPattern = regexp.MustCompile(`<br ?/?>`)
	// Everything outside printable ASCII plus tab/newline/carriage-return.
	nonPrintable = regexp.MustCompile("[^\x20-\x7e\t\n\r]")
	// Leading jurisdiction boilerplate occasionally pasted ahead of the
	// street line.
	jurisdiction = regexp.MustCompile(`(?i)^\s*(?:United States(?: of America)?|USA)\b[\s,.:-]*`)
	paren        = regexp.MustCompile(`\(.*?\)`)
	// Surveyor grid addresses such as N65W25055: an internal space would
	// make the tagger read the leading direction letter as a word.
	grid       = regexp.MustCompile(`(?i)\b[NSEW]\d{1,5} ?[NSEW]\d{1,5}\b`)
	multiSpace = regexp.MustCompile(`  +`)
)

// Clean normalizes raw input text. It never fails and is idempotent.
func Clean(raw string) string {
	s := brPattern.ReplaceAllString(raw, ",")
	s = nonPrintable.ReplaceAllString(s, "")
	s = jurisdiction.ReplaceAllString(s, "")
	s = paren.ReplaceAllString(s, "")
	s = grid.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(strings.ReplaceAll(m, " ", ""))
	})
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.Trim(s, " ,.")
}
