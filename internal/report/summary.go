package report

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

const (
	prefix              = "   "
	summaryHeader       = "❯❯ Build Summary"
	missingLabel        = "Missing"
	separatorLineLength = 28
	entryPrefixRepeat   = 2
)

// ansiRegex is used to remove ANSI escape codes from strings.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// WriteSummary writes the human readable summary.
func (r *Report) WriteSummary(w io.Writer, shouldColor bool) error {
	colorizer := NewColorizer(shouldColor)

	header := fmt.Sprintf("%s  %s",
		colorizer.headingTitleColorizer(summaryHeader),
		colorizer.headingCountColorizer(fmt.Sprintf("%d/%d components", r.Loaded(), r.Total)),
	)

	lines := []string{
		header,
		prefix + colorizer.paddingColorizer(strings.Repeat("─", max(separatorLineLength, visualLength(header)-len(prefix)))),
	}

	for _, group := range r.Groups {
		lines = append(lines, prefix+colorizer.repositoryColorizer(group.Dir))

		for _, entry := range group.Entries {
			line := strings.Repeat(prefix, entryPrefixRepeat) + colorizer.revisionColorizer(entry.Revision) + " " + entry.Path
			if entry.Dirty {
				line += " " + colorizer.dirtyColorizer("(DIRTY)")
			}

			lines = append(lines, line)
		}
	}

	if len(r.Missing) > 0 {
		lines = append(lines,
			prefix+colorizer.missingColorizer(fmt.Sprintf("%s (%d)", missingLabel, len(r.Missing))),
			strings.Repeat(prefix, entryPrefixRepeat)+strings.Join(r.Missing, ", "),
		)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// visualLength calculates the visual length of a string by removing ANSI escape codes
func visualLength(text string) int {
	return len([]rune(ansiRegex.ReplaceAllString(text, "")))
}
