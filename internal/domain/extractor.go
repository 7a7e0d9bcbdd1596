package domain

import "regexp"

var (
	includeOncePattern = regexp.MustCompile(`(?m)^#include-once`)
	// The target is built from word characters, dots and path separators and
	// must end in .au3 right before the closing quote. Anything after the
	// closing quote is ignored.
	includePattern = regexp.MustCompile(`(?m)^#include "([\p{L}\p{N}_.\\/]+\.au3)"`)
)

// ExtractIncludes scans the decoded text of one script file. It reports
// whether the file is include-guarded and returns the raw include targets in
// the order they appear. Only directives that start a line are recognized;
// anything else is silently ignored.
func ExtractIncludes(text string) (bool, []string) {
	guarded := includeOncePattern.MatchString(text)

	matches := includePattern.FindAllStringSubmatch(text, -1)
	includes := make([]string, 0, len(matches))

	for _, match := range matches {
		includes = append(includes, match[1])
	}

	return guarded, includes
}
