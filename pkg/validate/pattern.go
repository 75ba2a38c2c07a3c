package validate

import (
	"regexp"
	"strings"
)

// CompileSearch compiles a user-entered search pattern. It returns nil
// for blank input and for invalid syntax, so the search box degrades
// to "no pattern" rather than throwing past the query boundary. Case
// sensitivity is controlled here: the query layer just applies
// whatever pattern it is handed.
func CompileSearch(input string, caseSensitive bool) *regexp.Regexp {
	t := strings.TrimSpace(input)
	if t == "" {
		return nil
	}
	expr := t
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}

// CheckPattern attempts to compile a search pattern and surfaces the
// engine's own syntax-error message on failure. Blank input is valid.
func CheckPattern(input string) Result {
	t := strings.TrimSpace(input)
	if t == "" {
		return ok()
	}
	if _, err := regexp.Compile(t); err != nil {
		return fail("Invalid regex: " + err.Error())
	}
	return ok()
}
