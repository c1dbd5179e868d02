package report

import (
	"github.com/mgutz/ansi"
)

// Colorizer is a colorizer for the build summary output.
type Colorizer struct {
	headingTitleColorizer func(string) string
	headingCountColorizer func(string) string
	repositoryColorizer   func(string) string
	revisionColorizer     func(string) string
	dirtyColorizer        func(string) string
	missingColorizer      func(string) string
	paddingColorizer      func(string) string
}

// NewColorizer creates a new Colorizer.
func NewColorizer(shouldColor bool) *Colorizer {
	if !shouldColor {
		plain := func(s string) string { return s }

		return &Colorizer{
			headingTitleColorizer: plain,
			headingCountColorizer: plain,
			repositoryColorizer:   plain,
			revisionColorizer:     plain,
			dirtyColorizer:        plain,
			missingColorizer:      plain,
			paddingColorizer:      plain,
		}
	}

	return &Colorizer{
		headingTitleColorizer: ansi.ColorFunc("yellow+bh"),
		headingCountColorizer: ansi.ColorFunc("white+bh"),
		repositoryColorizer:   ansi.ColorFunc("blue+bh"),
		revisionColorizer:     ansi.ColorFunc("cyan+h"),
		dirtyColorizer:        ansi.ColorFunc("yellow+bh"),
		missingColorizer:      ansi.ColorFunc("red+bh"),
		paddingColorizer:      ansi.ColorFunc("gray"),
	}
}
