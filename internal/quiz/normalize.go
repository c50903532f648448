package quiz

import "strings"

// isBlank matches the ECMAScript \s class, so text collapses the same way in
// the browser and here. U+0085 is not part of it.
func isBlank(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00a0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return r >= 0x2000 && r <= 0x200a
}

var punctuationReplacer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"–", "-",
	"—", "-",
	"\r\n", " ",
	"\n", " ",
)

// Normalize prepares user text for a single tab-delimited field. Smart
// quotes and dashes become ASCII, line breaks become spaces, whitespace runs
// collapse to one space and the result is trimmed.
func Normalize(text string) string {
	text = punctuationReplacer.Replace(text)
	return strings.Join(strings.FieldsFunc(text, isBlank), " ")
}

// ContainsAngleTag reports whether text has a "<" followed later by ">".
func ContainsAngleTag(text string) bool {
	open := strings.IndexByte(text, '<')
	if open == -1 {
		return false
	}
	return strings.IndexByte(text[open+1:], '>') != -1
}
